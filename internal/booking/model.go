// Package booking holds the class, account and booking rules of the app.
package booking

import "time"

// User is a registered account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	CreatedAt    time.Time
}

// Session identifies the signed-in user on this device.
type Session struct {
	UserID string
	Email  string
	Name   string
}

func (u User) session() Session {
	return Session{UserID: u.ID, Email: u.Email, Name: u.Name}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFree     PaymentStatus = "free"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is one seat in one session of a class. WaiverSignature holds the
// serialized signature document exactly as the signature pad produced it.
type Booking struct {
	ID              string
	UserID          string
	ClassID         string
	ClassDate       string // DateKey of the session
	Status          Status
	WaiverSigned    bool
	WaiverSignature string
	WaiverSignedAt  time.Time
	PaymentStatus   PaymentStatus
	IsFirstClass    bool
	CreatedAt       time.Time
	CancelledAt     time.Time // zero unless cancelled
}

// Active reports whether the booking still holds a seat.
func (b Booking) Active() bool {
	return b.Status == StatusConfirmed
}

// Overview is what the class screen needs to know about a user.
type Overview struct {
	Class       Class
	NextDate    time.Time
	FirstClass  bool
	Active      *Booking // confirmed booking for NextDate, if any
	ActiveCount int
}
