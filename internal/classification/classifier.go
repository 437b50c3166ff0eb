// Package classification resolves free-text case descriptors to a
// procedural regime and finds the deadline rules governing a trigger
// event.
package classification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/praxislegal/docket/internal/common"
	"github.com/praxislegal/docket/internal/deadline"
	"github.com/praxislegal/docket/internal/model"
	"github.com/praxislegal/docket/internal/service"
)

// Keyword heuristics for the second resolution tier. Order matters:
// "criminal appeal" must resolve to the appellate regime, so appeal
// keywords are checked first.
var (
	appealKeywords   = []string{"appeal", "appellate", "certiorari"}
	criminalKeywords = []string{"felony", "misdemeanor", "dui", "criminal", "drug", "assault", "theft"}
)

// Classifier maps case types to regimes and selects governing rules.
type Classifier struct {
	rules      service.RuleStore
	calculator *deadline.Calculator
	table      map[string]model.Regime
}

// New creates a classifier over the given rule store and calculator.
// table is the maintained case-type → regime map (normalized keys);
// nil is allowed and leaves only the keyword tier.
func New(rules service.RuleStore, calculator *deadline.Calculator, table map[string]model.Regime) *Classifier {
	if table == nil {
		table = make(map[string]model.Regime)
	}
	return &Classifier{
		rules:      rules,
		calculator: calculator,
		table:      table,
	}
}

// ResolveRegime resolves free-text case-type input in two tiers: exact
// lookup against the maintained table, then keyword heuristics. Civil
// is the conservative default.
func (c *Classifier) ResolveRegime(caseType string) model.Regime {
	normalized := model.NormalizeCategory(caseType)

	if regime, ok := c.table[normalized]; ok {
		return regime
	}

	for _, kw := range appealKeywords {
		if strings.Contains(normalized, kw) {
			return model.RegimeAppeal
		}
	}
	for _, kw := range criminalKeywords {
		if strings.Contains(normalized, kw) {
			return model.RegimeCriminal
		}
	}

	slog.Debug("case type not matched, defaulting to civil", "case_type", caseType)
	return model.RegimeCivil
}

// FindRules returns candidate rules for the regime and trigger event,
// ordered by priority descending. Rules from exactly one regime are
// consulted; a miss is an explicit error, never a guessed date.
func (c *Classifier) FindRules(ctx context.Context, regime model.Regime, triggerEvent string) ([]model.DeadlineRule, error) {
	if strings.TrimSpace(triggerEvent) == "" {
		return nil, common.NewValidationError("triggerEvent", "must not be empty")
	}

	rules, err := c.rules.GetRules(ctx, regime, triggerEvent)
	if err != nil {
		return nil, fmt.Errorf("looking up rules: %w", err)
	}
	if len(rules) == 0 {
		return nil, &common.RuleNotFoundError{
			Regime:       string(regime),
			TriggerEvent: triggerEvent,
		}
	}
	return rules, nil
}

// DeadlineRequest describes an end-to-end deadline computation as a
// consumer supplies it.
type DeadlineRequest struct {
	TriggerDate   time.Time
	CaseType      string
	TriggerEvent  string
	ServiceMethod string
}

// ComputeDeadline resolves the regime, selects the highest-priority
// matching rule, and computes the due date under it, attaching the
// rule citation to the result.
func (c *Classifier) ComputeDeadline(ctx context.Context, req DeadlineRequest) (*model.DeadlineComputation, *model.DeadlineRule, error) {
	regime := c.ResolveRegime(req.CaseType)

	rules, err := c.FindRules(ctx, regime, req.TriggerEvent)
	if err != nil {
		return nil, nil, err
	}
	rule := rules[0]

	result, err := c.calculator.ComputeDueDate(ctx, deadline.Request{
		TriggerDate:   req.TriggerDate,
		ServiceMethod: req.ServiceMethod,
		Days:          rule.Days,
		MailAddDays:   rule.MailAddDays,
		Direction:     rule.Direction,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("computing due date under %s: %w", rule.RuleCitation, err)
	}
	result.RuleCitation = rule.RuleCitation

	slog.Info("computed deadline",
		"case_type", req.CaseType,
		"regime", regime,
		"trigger_event", req.TriggerEvent,
		"citation", rule.RuleCitation,
		"due_date", result.DueDate.Format("2006-01-02"),
		"extended", result.WasExtended,
		"degraded", result.Degraded)
	return result, &rule, nil
}
