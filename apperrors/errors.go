package apperrors

import "errors"

// Sentinel errors returned by the repository layer. Controllers map these to
// HTTP statuses and keep the response bodies entity-specific.
var (
	ErrNotFound           = errors.New("record not found")
	ErrReferenceNotFound  = errors.New("referenced record not found")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidDate        = errors.New("invalid date format")
	ErrEmailConflict      = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
