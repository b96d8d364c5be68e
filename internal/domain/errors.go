package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the error taxonomy. Services wrap these with
// context; the HTTP layer maps them onto status codes.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMatchConflict     = errors.New("match conflict")
	ErrForbidden         = errors.New("forbidden")
	ErrDuplicateEmail    = errors.New("email already registered")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Validationf builds a ValidationError with a formatted reason.
func Validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
