package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the domain sentinel for caller-supplied data that
// failed validation. Handlers map it to a 400 response.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports which field failed validation and why. It wraps
// ErrInvalidInput so callers can branch on the sentinel without losing the
// field detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match any validation error.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
