package booking

import "context"

// Store persists users, bookings and the device session. Lookups that find
// nothing return ErrNotFound; CreateUser returns ErrEmailTaken for a
// duplicate address.
type Store interface {
	CreateUser(ctx context.Context, u User) error
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id string) (User, error)

	CreateBooking(ctx context.Context, b Booking) error
	UpdateBooking(ctx context.Context, b Booking) error
	BookingByID(ctx context.Context, id string) (Booking, error)
	BookingsByUser(ctx context.Context, userID string) ([]Booking, error)

	SaveSession(ctx context.Context, s Session) error
	LoadSession(ctx context.Context) (Session, error)
	ClearSession(ctx context.Context) error
}
