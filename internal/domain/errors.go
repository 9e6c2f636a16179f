package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates input that fails domain validation.
	ErrValidation = errors.New("validation failed")
)
