package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrMissingFields is returned when name, email or message is absent.
	ErrMissingFields = errors.New("name, email, and message are required")

	// ErrInvalidEmail is returned when the email fails the shape check.
	ErrInvalidEmail = errors.New("invalid email format")
)

// Contact is a single contact-form submission. Records are append-only;
// there is no update or delete path.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidEmail is a pragmatic shape check, not an RFC parser: non-empty local
// part and domain, a dot in the domain, no whitespace anywhere.
func ValidEmail(email string) bool {
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
