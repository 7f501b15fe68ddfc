package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials covers both unknown emails and wrong passwords,
	// so the two cases are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering an already-known email.
	ErrEmailTaken = errors.New("email already registered")
)

// User is an admin account. The password hash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
