package domain

import "errors"

var (
	ErrNoTextProvided     = errors.New("no text provided")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("all fields are required")
)

// ValidationError marks a client input problem. Handlers answer it with 400.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func NewValidationError(err error) error {
	return &ValidationError{Err: err}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
