package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service runs the booking flow against a Store.
type Service struct {
	store    Store
	payments Processor
	class    Class
	now      func() time.Time
	newID    func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithClass offers c instead of DefaultClass.
func WithClass(c Class) Option {
	return func(s *Service) { s.class = c }
}

// WithIDs replaces the uuid generator.
func WithIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService returns a Service for DefaultClass.
func NewService(store Store, payments Processor, opts ...Option) *Service {
	s := &Service{
		store:    store,
		payments: payments,
		class:    DefaultClass,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Class returns the class on offer.
func (s *Service) Class() Class { return s.class }

// NextDate returns the next session of the class.
func (s *Service) NextDate() time.Time { return s.class.NextDate(s.now()) }

// Register creates an account and signs it in.
func (s *Service) Register(ctx context.Context, r Registration) (Session, error) {
	if err := r.Validate(); err != nil {
		return Session{}, err
	}
	email := strings.ToLower(strings.TrimSpace(r.Email))
	if _, err := s.store.UserByEmail(ctx, email); err == nil {
		return Session{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}
	u := User{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(r.Name),
		Phone:        strings.TrimSpace(r.Phone),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return Session{}, fmt.Errorf("create user: %w", err)
	}
	log.Printf("[booking] registered user %s", u.ID)
	return s.signIn(ctx, u)
}

// Login checks credentials and signs the user in.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.store.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.signIn(ctx, u)
}

func (s *Service) signIn(ctx context.Context, u User) (Session, error) {
	sess := u.session()
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Logout forgets the device session.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentSession restores the signed-in user, or ErrNotSignedIn.
func (s *Service) CurrentSession(ctx context.Context) (Session, error) {
	sess, err := s.store.LoadSession(ctx)
	if errors.Is(err, ErrNotFound) {
		return Session{}, ErrNotSignedIn
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

// Overview reports first-class eligibility and enrollment for the next
// session.
func (s *Service) Overview(ctx context.Context, sess Session) (Overview, error) {
	bookings, err := s.store.BookingsByUser(ctx, sess.UserID)
	if err != nil {
		return Overview{}, fmt.Errorf("list bookings: %w", err)
	}
	next := s.NextDate()
	ov := Overview{Class: s.class, NextDate: next, FirstClass: firstClass(bookings)}
	key := DateKey(next)
	for i := range bookings {
		b := bookings[i]
		if !b.Active() {
			continue
		}
		ov.ActiveCount++
		if b.ClassID == s.class.ID && b.ClassDate == key && ov.Active == nil {
			ov.Active = &b
		}
	}
	return ov, nil
}

// IsFirstClass reports whether the user has never held a booking.
func (s *Service) IsFirstClass(ctx context.Context, userID string) (bool, error) {
	bookings, err := s.store.BookingsByUser(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("list bookings: %w", err)
	}
	return firstClass(bookings), nil
}

// ActiveBooking returns the confirmed booking for the next session, or
// ErrNotFound.
func (s *Service) ActiveBooking(ctx context.Context, sess Session) (Booking, error) {
	ov, err := s.Overview(ctx, sess)
	if err != nil {
		return Booking{}, err
	}
	if ov.Active == nil {
		return Booking{}, ErrNotFound
	}
	return *ov.Active, nil
}

// ActiveCount counts the confirmed bookings of a user.
func (s *Service) ActiveCount(ctx context.Context, userID string) (int, error) {
	ov, err := s.Overview(ctx, Session{UserID: userID})
	if err != nil {
		return 0, err
	}
	return ov.ActiveCount, nil
}

// firstClass is true when no booking other than cancelled ones exists.
func firstClass(bookings []Booking) bool {
	for _, b := range bookings {
		if b.Status != StatusCancelled {
			return false
		}
	}
	return true
}

// Book reserves the next session. The first class is free; otherwise the
// card is charged through the Processor before the booking is stored.
func (s *Service) Book(ctx context.Context, sess Session, waiverSignature string, card Card) (Booking, error) {
	if sess.UserID == "" {
		return Booking{}, ErrNotSignedIn
	}
	if strings.TrimSpace(waiverSignature) == "" {
		return Booking{}, ErrSignatureRequired
	}
	if err := card.Validate(); err != nil {
		return Booking{}, err
	}

	ov, err := s.Overview(ctx, sess)
	if err != nil {
		return Booking{}, err
	}
	if ov.Active != nil {
		return Booking{}, ErrAlreadyBooked
	}

	payment := PaymentFree
	if !ov.FirstClass {
		if err := s.payments.Charge(ctx, s.class.Price, card); err != nil {
			return Booking{}, fmt.Errorf("charge card: %w", err)
		}
		payment = PaymentPaid
	}

	now := s.now().UTC()
	b := Booking{
		ID:              s.newID(),
		UserID:          sess.UserID,
		ClassID:         s.class.ID,
		ClassDate:       DateKey(ov.NextDate),
		Status:          StatusConfirmed,
		WaiverSigned:    true,
		WaiverSignature: waiverSignature,
		WaiverSignedAt:  now,
		PaymentStatus:   payment,
		IsFirstClass:    ov.FirstClass,
		CreatedAt:       now,
	}
	if err := s.store.CreateBooking(ctx, b); err != nil {
		return Booking{}, fmt.Errorf("create booking: %w", err)
	}
	log.Printf("[booking] booked %s for %s (%s)", b.ID, b.ClassDate, b.PaymentStatus)
	return b, nil
}

// Cancel releases a booking owned by the session user. Paid bookings are
// marked refunded.
func (s *Service) Cancel(ctx context.Context, sess Session, bookingID string) (Booking, error) {
	b, err := s.store.BookingByID(ctx, bookingID)
	if err != nil {
		return Booking{}, err
	}
	if b.UserID != sess.UserID {
		return Booking{}, ErrNotOwner
	}
	if b.Status == StatusCancelled {
		return b, nil
	}
	b.Status = StatusCancelled
	b.CancelledAt = s.now().UTC()
	if b.PaymentStatus == PaymentPaid {
		b.PaymentStatus = PaymentRefunded
	}
	if err := s.store.UpdateBooking(ctx, b); err != nil {
		return Booking{}, fmt.Errorf("update booking: %w", err)
	}
	log.Printf("[booking] cancelled %s", b.ID)
	return b, nil
}

// Booking returns one booking by id.
func (s *Service) Booking(ctx context.Context, id string) (Booking, error) {
	return s.store.BookingByID(ctx, id)
}

// Bookings lists a user's bookings, newest class date first.
func (s *Service) Bookings(ctx context.Context, userID string) ([]Booking, error) {
	return s.store.BookingsByUser(ctx, userID)
}

// UserBookings lists the bookings of the account registered under email.
func (s *Service) UserBookings(ctx context.Context, email string) (User, []Booking, error) {
	u, err := s.store.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return User{}, nil, err
	}
	bookings, err := s.store.BookingsByUser(ctx, u.ID)
	if err != nil {
		return User{}, nil, err
	}
	return u, bookings, nil
}

// BookingOwner returns a booking together with the account that holds it.
func (s *Service) BookingOwner(ctx context.Context, id string) (Booking, User, error) {
	b, err := s.store.BookingByID(ctx, id)
	if err != nil {
		return Booking{}, User{}, err
	}
	u, err := s.store.UserByID(ctx, b.UserID)
	if err != nil {
		return Booking{}, User{}, fmt.Errorf("lookup owner: %w", err)
	}
	return b, u, nil
}
