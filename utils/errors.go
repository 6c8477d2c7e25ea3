package utils

import "errors"

var (
	// ErrNotFound marks a missing entity or link.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness violation on a natural key.
	ErrConflict = errors.New("conflict")
	// ErrValidation marks malformed or inconsistent input.
	ErrValidation = errors.New("validation failed")
)
