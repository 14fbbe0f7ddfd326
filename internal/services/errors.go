package services

import (
	"errors"
	"strings"
)

// ValidationError marks input problems detected before any store access.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err (or anything it wraps) is a
// descriptor/input validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrSlugExhausted is returned when unique slug generation runs out of
// candidate suffixes. Definitive; never retried.
var ErrSlugExhausted = errors.New("exhausted slug candidates")

// IsConflictError applies the duplicate-detection heuristic: the store does
// not expose a structured conflict type, so the error text is inspected for
// unique/duplicate violations.
func IsConflictError(err error) bool {
	if err == nil {
		return false
	}
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "unique") || strings.Contains(text, "duplicate")
}
