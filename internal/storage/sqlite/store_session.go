package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dancebook/internal/booking"
)

// SaveSession replaces the device session.
func (s *Store) SaveSession(ctx context.Context, sess booking.Session) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO session (id, user_id, email, name) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id, email = excluded.email, name = excluded.name`,
		sess.UserID, sess.Email, sess.Name,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession returns the device session or booking.ErrNotFound.
func (s *Store) LoadSession(ctx context.Context) (booking.Session, error) {
	var sess booking.Session
	err := s.sqlDB.QueryRowContext(ctx, `SELECT user_id, email, name FROM session WHERE id = 1`).
		Scan(&sess.UserID, &sess.Email, &sess.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return booking.Session{}, booking.ErrNotFound
	}
	if err != nil {
		return booking.Session{}, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

// ClearSession signs the device out.
func (s *Store) ClearSession(ctx context.Context) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
