package model

import "time"

// DeadlineComputation is the result of computing a filing due date.
type DeadlineComputation struct {
	DueDate         time.Time
	ExtendedFrom    time.Time
	ExtensionReason string
	RuleCitation    string
	DegradedReason  string
	WasExtended     bool
	// Degraded marks a result computed without a working holiday
	// lookup (weekend-only rollover) or one that hit the rollover
	// bound. A degraded date is approximate and must be verified by
	// a human before filing.
	Degraded bool
}
