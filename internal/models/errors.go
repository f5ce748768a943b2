package models

import (
	"errors"
	"fmt"
)

// ValidationError is a coded domain error. Instances are compared by identity,
// so callers wrap them with fmt.Errorf("...: %w", err) and match with errors.Is.
type ValidationError struct {
	Code    string
	Message string
}

// NewValidationError creates a new coded validation error.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Custom errors
var (
	ErrEmptyInput            = NewValidationError("empty_input", "at least one entrant is required")
	ErrDegenerateProbability = NewValidationError("degenerate_probability", "probability outside the priceable range")
	ErrSamplingExhausted     = NewValidationError("sampling_exhausted", "no candidate carries positive weight")
	ErrInsufficientEntrants  = NewValidationError("insufficient_entrants", "a full result needs at least three entrants")
	ErrInvalidMargin         = NewValidationError("invalid_margin", "margin must be positive")
	ErrUnknownEntrant        = NewValidationError("unknown_entrant", "entrant is not in the field")
)

// ErrorCode extracts the code of a wrapped ValidationError, or "unknown".
func ErrorCode(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return "unknown"
}
