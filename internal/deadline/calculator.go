// Package deadline implements the deadline date calculator: pure
// calendar arithmetic plus weekend/holiday rollover against the court
// holiday calendar.
package deadline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/praxislegal/docket/internal/common"
	"github.com/praxislegal/docket/internal/model"
	"github.com/praxislegal/docket/internal/service"
)

// Config holds configuration options for the calculator.
type Config struct {
	// MaxRollover bounds the rollover loop so malformed holiday data
	// (e.g. every day marked a holiday) cannot spin forever.
	MaxRollover int
	// DefaultMailAddDays applies when a rule triggers the mail
	// extension without specifying its own day count.
	DefaultMailAddDays int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxRollover:        14,
		DefaultMailAddDays: 7,
	}
}

// Calculator computes filing due dates. Its only external dependency is
// the holiday lookup; everything else is closed-form date arithmetic.
type Calculator struct {
	holidays service.HolidayChecker
	config   Config
}

// New creates a calculator with the default configuration.
func New(holidays service.HolidayChecker) *Calculator {
	return NewWithConfig(holidays, DefaultConfig())
}

// NewWithConfig creates a calculator with custom configuration.
func NewWithConfig(holidays service.HolidayChecker, config Config) *Calculator {
	if config.MaxRollover <= 0 {
		config.MaxRollover = DefaultConfig().MaxRollover
	}
	if config.DefaultMailAddDays < 0 {
		config.DefaultMailAddDays = DefaultConfig().DefaultMailAddDays
	}
	return &Calculator{
		holidays: holidays,
		config:   config,
	}
}

// Request describes one due-date computation.
type Request struct {
	TriggerDate   time.Time
	ServiceMethod string
	Days          int
	// MailAddDays overrides the configured default when non-negative
	// and the service method is mail. -1 means use the default.
	MailAddDays int
	Direction   model.Direction
}

// ComputeDueDate counts Days calendar days from the trigger date
// (excluding the trigger day itself), extends for mail service, then
// rolls the result past weekends and holidays in the same direction.
//
// A holiday lookup failure is non-fatal: computation proceeds with
// weekend-only rollover and the result is marked degraded. An
// approximately correct date with a visible caveat beats a blocked
// filing workflow.
func (c *Calculator) ComputeDueDate(ctx context.Context, req Request) (*model.DeadlineComputation, error) {
	if req.TriggerDate.IsZero() {
		return nil, common.NewValidationError("triggerDate", "must be set")
	}
	if req.Days < 0 {
		return nil, common.NewValidationError("days", fmt.Sprintf("must be non-negative, got %d", req.Days))
	}
	if err := req.Direction.Validate(); err != nil {
		return nil, common.NewValidationError("direction", err.Error())
	}

	days := req.Days
	if model.IsMailService(req.ServiceMethod) {
		mailDays := req.MailAddDays
		if mailDays < 0 {
			mailDays = c.config.DefaultMailAddDays
		}
		days += mailDays
	}

	step := 1
	if req.Direction == model.DirectionBefore {
		step = -1
	}

	// Date-only arithmetic in a fixed offset; time-of-day and DST
	// transitions must not shift the result.
	target := normalizeDate(req.TriggerDate).AddDate(0, 0, step*days)

	result := &model.DeadlineComputation{
		DueDate:      target,
		ExtendedFrom: target,
	}

	var reasons []string
	holidaysDown := false
	for i := 0; ; i++ {
		if i >= c.config.MaxRollover {
			result.Degraded = true
			result.DegradedReason = common.ErrRolloverBoundExceeded.Error()
			slog.Warn("rollover bound exceeded, returning unresolved date",
				"trigger_date", req.TriggerDate.Format("2006-01-02"),
				"due_date", result.DueDate.Format("2006-01-02"),
				"bound", c.config.MaxRollover)
			break
		}

		reason, blocked := c.blockedOn(ctx, result.DueDate, &holidaysDown, result)
		if !blocked {
			break
		}
		reasons = append(reasons, reason)
		result.DueDate = result.DueDate.AddDate(0, 0, step)
	}

	if !result.DueDate.Equal(result.ExtendedFrom) {
		result.WasExtended = true
		result.ExtensionReason = strings.Join(reasons, ", ")
	}

	return result, nil
}

// blockedOn reports whether the date is a non-business day and why.
// A holiday lookup failure flips the computation into weekend-only
// degraded mode for the remainder of the rollover.
func (c *Calculator) blockedOn(ctx context.Context, date time.Time, holidaysDown *bool, result *model.DeadlineComputation) (string, bool) {
	switch date.Weekday() {
	case time.Saturday:
		return "Saturday", true
	case time.Sunday:
		return "Sunday", true
	default:
	}

	if *holidaysDown {
		return "", false
	}

	// A missing checker is an unavailable calendar, not a quiet
	// weekend-only mode.
	if c.holidays == nil {
		*holidaysDown = true
		result.Degraded = true
		result.DegradedReason = "holiday calendar not configured"
		slog.Warn("no holiday checker configured, continuing with weekend-only rollover")
		return "", false
	}

	// Re-query on every iteration: a rolled date can itself be a
	// holiday during multi-day court closures.
	isHoliday, name, err := c.holidays.IsHoliday(ctx, date)
	if err != nil {
		*holidaysDown = true
		result.Degraded = true
		result.DegradedReason = fmt.Sprintf("holiday calendar unavailable: %v", err)
		slog.Warn("holiday lookup failed, continuing with weekend-only rollover",
			"date", date.Format("2006-01-02"),
			"error", err)
		return "", false
	}
	if isHoliday {
		return name, true
	}
	return "", false
}

// normalizeDate truncates a timestamp to midnight UTC so all arithmetic
// runs in a fixed reference offset.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
