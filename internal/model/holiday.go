package model

import "time"

// HolidayEntry is an immutable reference record for a single court
// blackout date.
type HolidayEntry struct {
	Date time.Time
	Name string
}

// DateKey returns the canonical date-only key for holiday lookups.
func (h HolidayEntry) DateKey() string {
	return h.Date.Format("2006-01-02")
}
