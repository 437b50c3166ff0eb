package model

import (
	"fmt"
	"strings"
	"time"
)

// ActorKind identifies what role an actor plays in the court system.
type ActorKind string

// Actor kind constants.
const (
	ActorKindJudge    ActorKind = "judge"
	ActorKindCounsel  ActorKind = "counsel"
	ActorKindAttorney ActorKind = "attorney"
)

// Validate ensures the actor kind is a known value.
func (k ActorKind) Validate() error {
	switch k {
	case ActorKindJudge, ActorKindCounsel, ActorKindAttorney:
		return nil
	default:
		return fmt.Errorf("unknown actor kind: %q", string(k))
	}
}

// Activity types observed frequently enough to merit named constants.
// The set is open: new types are recorded operationally without a
// redeploy, so ActivityType stays a plain string and these constants
// only anchor exhaustive handling of the common cases.
const (
	ActivityMotionRuling     = "motion_ruling"
	ActivityObjectionRuling  = "objection_ruling"
	ActivityContinuance      = "continuance_request"
	ActivitySettlementStance = "settlement_stance"
	ActivityDiscoveryDispute = "discovery_dispute"
)

// KnownActivityType reports whether the given type is one of the named
// constants above, after normalization.
func KnownActivityType(activityType string) bool {
	switch NormalizeCategory(activityType) {
	case ActivityMotionRuling, ActivityObjectionRuling, ActivityContinuance,
		ActivitySettlementStance, ActivityDiscoveryDispute:
		return true
	default:
		return false
	}
}

// NormalizeCategory canonicalizes open category strings (activity types,
// subtypes, outcomes) for case-insensitive grouping.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ActivityLogEntry is one append-only observation of actor behavior.
// Entries are created only by an explicit logging action and are never
// mutated or deleted.
type ActivityLogEntry struct {
	CreatedAt       time.Time
	Date            time.Time
	ActorName       string
	ActorKind       ActorKind
	ActivityType    string
	ActivitySubtype string
	Outcome         string
	PartyRole       string
	CaseNumber      string
	Details         string
	ID              int64
}

// Validate ensures the ActivityLogEntry has valid data.
func (e *ActivityLogEntry) Validate() error {
	if strings.TrimSpace(e.ActorName) == "" {
		return fmt.Errorf("actor name is required")
	}
	if err := e.ActorKind.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.ActivityType) == "" {
		return fmt.Errorf("activity type is required")
	}
	if strings.TrimSpace(e.Outcome) == "" {
		return fmt.Errorf("outcome is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}
