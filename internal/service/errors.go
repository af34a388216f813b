package service

import "errors"

// Sentinel errors translated to HTTP statuses at the request boundary.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrAuthRequired       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidTransition covers attempts to move a reservation out of a
	// terminal state, e.g. confirming a cancelled reservation.
	ErrInvalidTransition = errors.New("reservation status does not allow this transition")
)
