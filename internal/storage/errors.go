package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by point lookups and updates when no record
	// with the given id exists.
	ErrNotFound = errors.New("storage: record not found")

	// ErrUnavailable is returned when the backend cannot be reached. It is
	// always wrapped with the underlying cause so callers can distinguish
	// "no data" from "could not reach storage".
	ErrUnavailable = errors.New("storage: backend unavailable")
)

// ValidationError describes malformed input to a create or update operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("storage: invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
