// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Database errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")

	// Computation errors.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrRolloverBoundExceeded = errors.New("rollover bound exceeded")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError reports malformed caller input: negative day counts,
// unknown directions, empty required fields. It is always surfaced to
// the caller, never silently defaulted — a wrong computed deadline is
// strictly worse than no deadline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a named field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// RuleNotFoundError reports that no deadline rule matched a
// (regime, trigger event) pair. The caller gets this explicit signal
// rather than a guessed date.
type RuleNotFoundError struct {
	Regime       string
	TriggerEvent string
}

func (e *RuleNotFoundError) Error() string {
	return fmt.Sprintf("no deadline rule found for regime %q and trigger event %q", e.Regime, e.TriggerEvent)
}

// DataQualityWarning flags a non-fatal defect in input data, such as an
// activity log entry with an unparseable date. Warnings are attached to
// results so a human can audit confidence before relying on them.
type DataQualityWarning struct {
	Detail string
}

func (w *DataQualityWarning) Error() string {
	return fmt.Sprintf("data quality warning: %s", w.Detail)
}

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
