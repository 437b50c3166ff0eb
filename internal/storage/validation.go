package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/praxislegal/docket/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrEmptySlice       = errors.New("slice cannot be empty")
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidRule      = errors.New("invalid deadline rule")
	ErrInvalidHoliday   = errors.New("invalid holiday entry")
	ErrInvalidLogEntry  = errors.New("invalid activity log entry")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDateRange ensures from is not after to.
func validateDateRange(from, to time.Time) error {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return ErrInvalidDateRange
	}
	return nil
}

// validateRule validates a deadline rule before persistence.
func validateRule(rule *model.DeadlineRule) error {
	if rule == nil {
		return fmt.Errorf("%w: rule", ErrNilParameter)
	}
	if err := rule.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	return nil
}

// validateHolidays validates a slice of holiday entries.
func validateHolidays(entries []model.HolidayEntry) error {
	if entries == nil {
		return fmt.Errorf("%w: entries", ErrNilParameter)
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w: entries", ErrEmptySlice)
	}
	for i, e := range entries {
		if e.Date.IsZero() {
			return fmt.Errorf("%w: missing date at index %d", ErrInvalidHoliday, i)
		}
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("%w: missing name at index %d", ErrInvalidHoliday, i)
		}
	}
	return nil
}

// validateLogEntry validates an activity log entry before append.
func validateLogEntry(entry *model.ActivityLogEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry", ErrNilParameter)
	}
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogEntry, err)
	}
	return nil
}
