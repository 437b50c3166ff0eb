// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/praxislegal/docket/internal/model"
)

// EntryFilter defines filtering options for activity log queries.
type EntryFilter struct {
	ActivityType    string
	ActivitySubtype string
	Limit           int
}

// RuleStore is the Rule Repository: reference data mapping a
// (regime, trigger event) pair to candidate deadline rules.
type RuleStore interface {
	// GetRules returns active rules for the regime whose trigger event
	// contains the given substring, ordered by priority descending.
	GetRules(ctx context.Context, regime model.Regime, triggerEvent string) ([]model.DeadlineRule, error)
	SaveRule(ctx context.Context, rule *model.DeadlineRule) error
	ListRules(ctx context.Context, regime model.Regime) ([]model.DeadlineRule, error)
}

// HolidayChecker answers point queries against the Holiday Calendar.
// The deadline calculator depends on nothing else from storage.
type HolidayChecker interface {
	// IsHoliday reports whether the date is a configured blackout date
	// and, if so, its name.
	IsHoliday(ctx context.Context, date time.Time) (bool, string, error)
}

// HolidayStore maintains the Holiday Calendar reference data.
type HolidayStore interface {
	HolidayChecker
	SaveHolidays(ctx context.Context, entries []model.HolidayEntry) error
	ListHolidays(ctx context.Context, from, to time.Time) ([]model.HolidayEntry, error)
}

// ActivityLog is the append-only store of historical actor behavior.
// There is deliberately no update or delete operation.
type ActivityLog interface {
	AppendEntry(ctx context.Context, entry *model.ActivityLogEntry) (int64, error)
	FetchEntries(ctx context.Context, actorName string, filter EntryFilter) ([]model.ActivityLogEntry, error)
	ListActors(ctx context.Context) ([]string, error)
}

// CaseTypeStore supplies the maintained case-type → regime table that
// seeds the classifier's exact-match tier.
type CaseTypeStore interface {
	GetCaseTypeRegimes(ctx context.Context) (map[string]model.Regime, error)
	SaveCaseTypeRegime(ctx context.Context, caseType string, regime model.Regime) error
}

// Storage is the full persistence contract implemented by the SQLite
// backend.
type Storage interface {
	RuleStore
	HolidayStore
	ActivityLog
	CaseTypeStore

	Migrate(ctx context.Context) error
	Close() error
}
