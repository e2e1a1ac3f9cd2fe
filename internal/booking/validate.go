package booking

import (
	"regexp"
	"strings"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern  = regexp.MustCompile(`^[\d\s\-+()]+$`)
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
)

const minPasswordLen = 6

// ValidateEmail reports whether email looks like an address.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword returns a message when password is unusable.
func ValidatePassword(password string) string {
	if len(password) < minPasswordLen {
		return "Password must be at least 6 characters"
	}
	return ""
}

// ValidateName returns a message when name is too short.
func ValidateName(name string) string {
	if len([]rune(strings.TrimSpace(name))) < 2 {
		return "Name must be at least 2 characters"
	}
	return ""
}

// ValidatePhone returns a message for a malformed phone number. An empty
// phone is allowed.
func ValidatePhone(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return ""
	}
	if !phonePattern.MatchString(phone) || len(digits(phone)) < 10 {
		return "Please enter a valid phone number"
	}
	return ""
}

// Registration is the sign-up form.
type Registration struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Confirm  string
}

// Validate checks every field and reports all failures at once.
func (r Registration) Validate() error {
	fe := FieldErrors{}
	if msg := ValidateName(r.Name); msg != "" {
		fe["name"] = msg
	}
	switch {
	case strings.TrimSpace(r.Email) == "":
		fe["email"] = "Email is required"
	case !ValidateEmail(strings.TrimSpace(r.Email)):
		fe["email"] = "Please enter a valid email"
	}
	if msg := ValidatePhone(r.Phone); msg != "" {
		fe["phone"] = msg
	}
	if msg := ValidatePassword(r.Password); msg != "" {
		fe["password"] = msg
	}
	if r.Password != r.Confirm {
		fe["confirm"] = "Passwords do not match"
	}
	return fe.errOrNil()
}

// Card is the mock payment form.
type Card struct {
	Number       string
	Expiry       string // MM/YY
	CVV          string
	Holder       string
	BillingEmail string
}

// Validate checks the card form the way the payment screen does.
func (c Card) Validate() error {
	fe := FieldErrors{}
	if len(strings.Join(strings.Fields(c.Number), "")) < 16 {
		fe["number"] = "Please enter a valid card number"
	}
	if !expiryPattern.MatchString(strings.TrimSpace(c.Expiry)) {
		fe["expiry"] = "Please enter a valid expiry date (MM/YY)"
	}
	if len(strings.TrimSpace(c.CVV)) < 3 {
		fe["cvv"] = "Please enter a valid CVV"
	}
	if strings.TrimSpace(c.Holder) == "" {
		fe["holder"] = "Cardholder name is required"
	}
	switch email := strings.TrimSpace(c.BillingEmail); {
	case email == "":
		fe["billing_email"] = "Billing email is required"
	case !ValidateEmail(email):
		fe["billing_email"] = "Please enter a valid email"
	}
	return fe.errOrNil()
}

// FormatCardNumber groups the digits of s in fours, e.g. "1234 5678".
func FormatCardNumber(s string) string {
	d := digits(s)
	if len(d) > 16 {
		d = d[:16]
	}
	var b strings.Builder
	for i, r := range d {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry inserts the slash of an MM/YY expiry.
func FormatExpiry(s string) string {
	d := digits(s)
	if len(d) > 4 {
		d = d[:4]
	}
	if len(d) >= 2 {
		return d[:2] + "/" + d[2:]
	}
	return d
}

// FormatCVV keeps at most four digits.
func FormatCVV(s string) string {
	d := digits(s)
	if len(d) > 4 {
		d = d[:4]
	}
	return d
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
