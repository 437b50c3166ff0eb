// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Regime identifies the procedural rule family governing a case.
type Regime string

// Procedural regime constants.
const (
	RegimeCivil    Regime = "civil"
	RegimeCriminal Regime = "criminal"
	RegimeAppeal   Regime = "appeal"
)

// Validate ensures the regime is one of the known rule families.
func (r Regime) Validate() error {
	switch r {
	case RegimeCivil, RegimeCriminal, RegimeAppeal:
		return nil
	default:
		return fmt.Errorf("unknown regime: %q", string(r))
	}
}

// Direction indicates which way a deadline counts from its trigger event.
type Direction string

// Deadline direction constants.
const (
	DirectionAfter  Direction = "after"
	DirectionBefore Direction = "before"
)

// Validate ensures the direction is a known value.
func (d Direction) Validate() error {
	switch d {
	case DirectionAfter, DirectionBefore:
		return nil
	default:
		return fmt.Errorf("unknown direction: %q", string(d))
	}
}

// ServiceMethodMail is the only service method that changes deadline
// arithmetic; all other methods are accepted as-is since courts add new
// service types operationally.
const ServiceMethodMail = "mail"

// IsMailService reports whether a service method string triggers the
// mail-service extension.
func IsMailService(method string) bool {
	return strings.EqualFold(strings.TrimSpace(method), ServiceMethodMail)
}

// DeadlineRule is an immutable reference record mapping a (regime,
// trigger event) pair to a day count and citation.
type DeadlineRule struct {
	CreatedAt    time.Time
	Regime       Regime
	TriggerEvent string
	Direction    Direction
	RuleCitation string
	Notes        string
	ID           int
	Days         int
	MailAddDays  int
	Priority     int
	IsActive     bool
}

// Validate ensures the DeadlineRule has valid data.
func (r *DeadlineRule) Validate() error {
	if err := r.Regime.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.TriggerEvent) == "" {
		return fmt.Errorf("trigger event is required")
	}
	if r.Days < 0 {
		return fmt.Errorf("days must be non-negative, got %d", r.Days)
	}
	if r.MailAddDays < 0 {
		return fmt.Errorf("mail add days must be non-negative, got %d", r.MailAddDays)
	}
	if err := r.Direction.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.RuleCitation) == "" {
		return fmt.Errorf("rule citation is required")
	}
	return nil
}

// DeadlineRules is a slice of DeadlineRule that sorts by priority.
type DeadlineRules []DeadlineRule

// Len implements sort.Interface.
func (r DeadlineRules) Len() int {
	return len(r)
}

// Less implements sort.Interface - higher priority rules come first.
func (r DeadlineRules) Less(i, j int) bool {
	if r[i].Priority != r[j].Priority {
		return r[i].Priority > r[j].Priority
	}
	// Equal priorities sort by citation for stable output
	return r[i].RuleCitation < r[j].RuleCitation
}

// Swap implements sort.Interface.
func (r DeadlineRules) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}
