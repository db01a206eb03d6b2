package usecase

import "errors"

// Domain errors surfaced to handlers. Handlers map these to HTTP statuses
// with errors.Is; everything else is an internal error.
var (
	// ErrValidation wraps input that fails declared constraints.
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyReviewed means the caller already has a review for that movie.
	ErrAlreadyReviewed = errors.New("movie already reviewed")

	// ErrNotOwner covers both a missing review and one owned by someone
	// else. The two cases stay indistinguishable so a mutation attempt
	// cannot confirm that a given review id exists.
	ErrNotOwner = errors.New("cannot modify this review")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUpstream wraps failures of the external movie catalog.
	ErrUpstream = errors.New("catalog unavailable")
)
