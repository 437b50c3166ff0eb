package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/praxislegal/docket/internal/model"
)

// GetRules returns active rules for the regime whose trigger event
// contains the given substring, ordered by priority descending.
func (s *SQLiteStorage) GetRules(ctx context.Context, regime model.Regime, triggerEvent string) ([]model.DeadlineRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := regime.Validate(); err != nil {
		return nil, err
	}
	if err := validateString(triggerEvent, "triggerEvent"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, regime, trigger_event, days, direction, mail_add_days,
		       priority, rule_citation, COALESCE(notes, ''), is_active, created_at
		FROM deadline_rules
		WHERE regime = ? AND is_active = 1 AND instr(lower(trigger_event), lower(?)) > 0
		ORDER BY priority DESC, rule_citation`

	rows, err := s.db.QueryContext(ctx, query, string(regime), strings.TrimSpace(triggerEvent))
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer rows.Close()

	rules, err := scanRules(rows)
	if err != nil {
		return nil, err
	}

	slog.Debug("retrieved deadline rules",
		"regime", regime,
		"trigger_event", triggerEvent,
		"count", len(rules))
	return rules, nil
}

// ListRules returns all active rules for a regime ordered by priority.
func (s *SQLiteStorage) ListRules(ctx context.Context, regime model.Regime) ([]model.DeadlineRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := regime.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT id, regime, trigger_event, days, direction, mail_add_days,
		       priority, rule_citation, COALESCE(notes, ''), is_active, created_at
		FROM deadline_rules
		WHERE regime = ? AND is_active = 1
		ORDER BY priority DESC, rule_citation`

	rows, err := s.db.QueryContext(ctx, query, string(regime))
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// SaveRule inserts a new deadline rule.
func (s *SQLiteStorage) SaveRule(ctx context.Context, rule *model.DeadlineRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRule(rule); err != nil {
		return err
	}

	query := `
		INSERT INTO deadline_rules
			(regime, trigger_event, days, direction, mail_add_days, priority, rule_citation, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		string(rule.Regime), rule.TriggerEvent, rule.Days, string(rule.Direction),
		rule.MailAddDays, rule.Priority, rule.RuleCitation, rule.Notes)
	if err != nil {
		return fmt.Errorf("failed to save rule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get rule id: %w", err)
	}
	rule.ID = int(id)

	slog.Debug("saved deadline rule", "id", rule.ID, "citation", rule.RuleCitation)
	return nil
}

// rowScanner abstracts *sql.Rows for rule scanning.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRules(rows rowScanner) ([]model.DeadlineRule, error) {
	var rules []model.DeadlineRule
	for rows.Next() {
		var r model.DeadlineRule
		var regime, direction string
		var isActive int
		if err := rows.Scan(&r.ID, &regime, &r.TriggerEvent, &r.Days, &direction,
			&r.MailAddDays, &r.Priority, &r.RuleCitation, &r.Notes, &isActive, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		r.Regime = model.Regime(regime)
		r.Direction = model.Direction(direction)
		r.IsActive = isActive == 1
		rules = append(rules, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rules: %w", err)
	}
	return rules, nil
}
