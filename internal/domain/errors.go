package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMalformedRecord   = errors.New("malformed record")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrSourceNotFound    = errors.New("source not found")
	ErrUnknownToken      = errors.New("unknown token")
)

// InputError reports a rejected argument to a store mutation
type InputError struct {
	Field   string // Field that failed validation: "description", "priority", ...
	Message string // Human-readable context
}

func (e *InputError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s", e.Field)
}

// Unwrap lets errors.Is match ErrInvalidInput
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
