package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dancebook/internal/booking"
)

// CreateUser inserts u. A second account with the same email fails with
// booking.ErrEmailTaken.
func (s *Store) CreateUser(ctx context.Context, u booking.User) error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, name, phone, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Phone, toMillis(u.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return booking.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// UserByEmail looks up an account by its normalized email.
func (s *Store) UserByEmail(ctx context.Context, email string) (booking.User, error) {
	return s.user(ctx, `WHERE email = ?`, email)
}

// UserByID looks up an account by id.
func (s *Store) UserByID(ctx context.Context, id string) (booking.User, error) {
	return s.user(ctx, `WHERE id = ?`, id)
}

func (s *Store) user(ctx context.Context, where string, arg any) (booking.User, error) {
	var (
		u       booking.User
		created int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, phone, created_at FROM users `+where, arg,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return booking.User{}, booking.ErrNotFound
	}
	if err != nil {
		return booking.User{}, fmt.Errorf("get user: %w", err)
	}
	u.CreatedAt = fromMillis(created)
	return u, nil
}
