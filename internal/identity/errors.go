package identity

import "errors"

var (
	// ErrUserNotFound is returned when no user document matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when an insert hits the unique email index.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidID is returned when a path id is not a valid object id hex.
	ErrInvalidID = errors.New("invalid id")
)
