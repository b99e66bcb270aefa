package errors

import "errors"

// Common application errors shared across services and handlers.
var (
	// ErrNotFound is returned when a record or resource does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrValidation is returned when input data violates a structural rule.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned on resource state conflicts.
	ErrConflict = errors.New("resource state conflict")
)
