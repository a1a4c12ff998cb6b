// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Request errors.
	ErrValidation = errors.New("validation failed")

	// Source errors.
	ErrSourceUnavailable = errors.New("data source unavailable")
	ErrEmptyDataset      = errors.New("data source returned no records")

	// Search errors.
	ErrNoMatch = errors.New("no records match the requested route")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsNotFound reports whether err means the search found nothing to return,
// either because the source is empty or because no record matched.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmptyDataset) || errors.Is(err, ErrNoMatch)
}
