package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/praxislegal/docket/internal/model"
)

// GetCaseTypeRegimes returns the maintained case-type → regime table,
// keyed by normalized case type.
func (s *SQLiteStorage) GetCaseTypeRegimes(ctx context.Context) (map[string]model.Regime, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT case_type, regime FROM case_type_map`)
	if err != nil {
		return nil, fmt.Errorf("failed to query case type map: %w", err)
	}
	defer rows.Close()

	table := make(map[string]model.Regime)
	for rows.Next() {
		var caseType, regime string
		if err := rows.Scan(&caseType, &regime); err != nil {
			return nil, fmt.Errorf("failed to scan case type mapping: %w", err)
		}
		table[model.NormalizeCategory(caseType)] = model.Regime(regime)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating case type map: %w", err)
	}
	return table, nil
}

// SaveCaseTypeRegime upserts one case-type → regime mapping.
func (s *SQLiteStorage) SaveCaseTypeRegime(ctx context.Context, caseType string, regime model.Regime) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(caseType, "caseType"); err != nil {
		return err
	}
	if err := regime.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO case_type_map (case_type, regime) VALUES (?, ?)
		 ON CONFLICT(case_type) DO UPDATE SET regime = excluded.regime`,
		strings.ToLower(strings.TrimSpace(caseType)), string(regime))
	if err != nil {
		return fmt.Errorf("failed to save case type mapping: %w", err)
	}
	return nil
}
