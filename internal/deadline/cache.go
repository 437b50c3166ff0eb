package deadline

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/praxislegal/docket/internal/common"
	"github.com/praxislegal/docket/internal/model"
	"github.com/praxislegal/docket/internal/service"
)

// holidaySet is an immutable snapshot of the holiday calendar keyed by
// date string.
type holidaySet struct {
	names map[string]string
}

// CachedHolidays is a read-through snapshot of the Holiday Calendar.
// Refresh loads a complete new set and swaps it in atomically, so a
// reader never observes a half-updated calendar.
type CachedHolidays struct {
	source  service.HolidayStore
	current atomic.Pointer[holidaySet]
}

// NewCachedHolidays creates an empty cache over the given store. Call
// Refresh before first use; lookups against an unloaded cache report
// the calendar as unavailable so callers degrade instead of silently
// treating every day as a business day.
func NewCachedHolidays(source service.HolidayStore) *CachedHolidays {
	return &CachedHolidays{source: source}
}

// Refresh loads the full holiday set and atomically replaces the
// current snapshot.
func (c *CachedHolidays) Refresh(ctx context.Context) error {
	entries, err := c.source.ListHolidays(ctx, time.Time{}, time.Time{})
	if err != nil {
		return fmt.Errorf("refreshing holiday cache: %w", err)
	}

	next := &holidaySet{names: make(map[string]string, len(entries))}
	for _, e := range entries {
		next.names[e.DateKey()] = e.Name
	}

	c.current.Store(next)
	slog.Debug("refreshed holiday cache", "count", len(entries))
	return nil
}

// IsHoliday answers from the current snapshot without touching storage.
func (c *CachedHolidays) IsHoliday(_ context.Context, date time.Time) (bool, string, error) {
	set := c.current.Load()
	if set == nil {
		return false, "", fmt.Errorf("holiday cache not loaded: %w", common.ErrDependencyUnavailable)
	}

	name, ok := set.names[date.Format("2006-01-02")]
	return ok, name, nil
}

// SaveHolidays writes through to the underlying store and refreshes the
// snapshot.
func (c *CachedHolidays) SaveHolidays(ctx context.Context, entries []model.HolidayEntry) error {
	if err := c.source.SaveHolidays(ctx, entries); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// ListHolidays delegates to the underlying store.
func (c *CachedHolidays) ListHolidays(ctx context.Context, from, to time.Time) ([]model.HolidayEntry, error) {
	return c.source.ListHolidays(ctx, from, to)
}
