package booking

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotSignedIn        = errors.New("not signed in")
	ErrSignatureRequired  = errors.New("waiver signature is required")
	ErrAlreadyBooked      = errors.New("already booked for this class")
	ErrNotOwner           = errors.New("booking belongs to another user")
)

// FieldErrors maps form fields to the message shown next to them.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// errOrNil keeps a nil FieldErrors from turning into a non-nil error.
func (fe FieldErrors) errOrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// AsFieldErrors extracts field errors from err.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
