package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dancebook/internal/booking"
)

const bookingColumns = `id, user_id, class_id, class_date, status, waiver_signed,
	waiver_signature, waiver_signed_at, payment_status, is_first_class,
	created_at, cancelled_at`

// CreateBooking inserts b.
func (s *Store) CreateBooking(ctx context.Context, b booking.Booking) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO bookings (`+bookingColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, b.ClassID, b.ClassDate, string(b.Status), boolInt(b.WaiverSigned),
		b.WaiverSignature, nullMillis(b.WaiverSignedAt), string(b.PaymentStatus), boolInt(b.IsFirstClass),
		toMillis(b.CreatedAt), nullMillis(b.CancelledAt),
	)
	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

// UpdateBooking rewrites the mutable fields of an existing booking.
func (s *Store) UpdateBooking(ctx context.Context, b booking.Booking) error {
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE bookings
		    SET status = ?, waiver_signed = ?, waiver_signature = ?, waiver_signed_at = ?,
		        payment_status = ?, cancelled_at = ?
		  WHERE id = ?`,
		string(b.Status), boolInt(b.WaiverSigned), b.WaiverSignature, nullMillis(b.WaiverSignedAt),
		string(b.PaymentStatus), nullMillis(b.CancelledAt), b.ID,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if n == 0 {
		return booking.ErrNotFound
	}
	return nil
}

// BookingByID returns one booking.
func (s *Store) BookingByID(ctx context.Context, id string) (booking.Booking, error) {
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return booking.Booking{}, booking.ErrNotFound
	}
	if err != nil {
		return booking.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// BookingsByUser lists a user's bookings, latest class date first.
func (s *Store) BookingsByUser(ctx context.Context, userID string) ([]booking.Booking, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = ? ORDER BY class_date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var out []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (booking.Booking, error) {
	var (
		b                  booking.Booking
		status, payment    string
		signed, firstClass int
		signedAt, cancelAt sql.NullInt64
		created            int64
	)
	if err := row.Scan(
		&b.ID, &b.UserID, &b.ClassID, &b.ClassDate, &status, &signed,
		&b.WaiverSignature, &signedAt, &payment, &firstClass,
		&created, &cancelAt,
	); err != nil {
		return booking.Booking{}, err
	}
	b.Status = booking.Status(status)
	b.PaymentStatus = booking.PaymentStatus(payment)
	b.WaiverSigned = signed != 0
	b.IsFirstClass = firstClass != 0
	b.WaiverSignedAt = fromNullMillis(signedAt)
	b.CreatedAt = fromMillis(created)
	b.CancelledAt = fromNullMillis(cancelAt)
	return b, nil
}
