// Package apperr defines the error categories shared by the application
// services. Services wrap these with context; the HTTP layer maps them to
// status codes with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
	ErrConflict        = errors.New("conflict")
)

// NotFound wraps ErrNotFound with the name of the missing entity
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// Forbidden wraps ErrForbidden with the attempted action
func Forbidden(action string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, action)
}

// Invalid wraps ErrInvalidArgument with a description of the bad input
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
