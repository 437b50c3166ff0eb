package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS deadline_rules (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					regime TEXT NOT NULL,
					trigger_event TEXT NOT NULL,
					days INTEGER NOT NULL,
					direction TEXT NOT NULL,
					mail_add_days INTEGER NOT NULL DEFAULT 0,
					priority INTEGER NOT NULL DEFAULT 0,
					rule_citation TEXT NOT NULL,
					notes TEXT,
					is_active INTEGER NOT NULL DEFAULT 1,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_deadline_rules_lookup ON deadline_rules(regime, trigger_event)`,

				`CREATE TABLE IF NOT EXISTS holidays (
					date TEXT PRIMARY KEY,
					name TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS case_type_map (
					case_type TEXT PRIMARY KEY,
					regime TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS activity_log (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					actor_name TEXT NOT NULL,
					actor_kind TEXT NOT NULL,
					activity_type TEXT NOT NULL,
					activity_subtype TEXT,
					outcome TEXT NOT NULL,
					party_role TEXT,
					date DATETIME NOT NULL,
					case_number TEXT,
					details TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_activity_log_actor ON activity_log(actor_name)`,
				`CREATE INDEX idx_activity_log_type ON activity_log(activity_type)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Seed Utah reference data",
		Up: func(tx *sql.Tx) error {
			ruleStmt := `INSERT INTO deadline_rules
				(regime, trigger_event, days, direction, mail_add_days, priority, rule_citation, notes)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
			seedRules := []struct {
				regime       string
				triggerEvent string
				direction    string
				citation     string
				notes        string
				days         int
				mailAddDays  int
				priority     int
			}{
				{"civil", "service of summons", "after", "URCP 12(a)", "Answer to complaint", 21, 0, 10},
				{"civil", "motion filed", "after", "URCP 7(e)", "Memorandum opposing a motion", 14, 7, 10},
				{"civil", "service of discovery requests", "after", "URCP 33(b)", "Responses to interrogatories", 28, 7, 10},
				{"civil", "trial date", "before", "URCP 26(a)(5)", "Pretrial disclosures", 28, 0, 10},
				{"civil", "entry of judgment", "after", "URCP 59(b)", "Motion for new trial", 28, 0, 5},
				{"criminal", "arraignment", "after", "URCrP 12(c)", "Pretrial motions", 28, 0, 10},
				{"criminal", "entry of judgment", "after", "URCrP 24(c)", "Motion for new trial", 14, 0, 10},
				{"criminal", "trial date", "before", "URCrP 16(b)", "Reciprocal discovery disclosures", 14, 0, 10},
				{"appeal", "entry of judgment", "after", "URAP 4(a)", "Notice of appeal", 30, 0, 10},
				{"appeal", "notice of appeal", "after", "URAP 9(a)", "Docketing statement", 21, 0, 10},
				{"appeal", "record certification", "after", "URAP 26(a)", "Appellant's opening brief", 40, 7, 10},
			}
			for _, r := range seedRules {
				if _, err := tx.Exec(ruleStmt, r.regime, r.triggerEvent, r.days, r.direction,
					r.mailAddDays, r.priority, r.citation, r.notes); err != nil {
					return fmt.Errorf("failed to seed rule %s: %w", r.citation, err)
				}
			}

			holidayStmt := `INSERT INTO holidays (date, name) VALUES (?, ?)`
			seedHolidays := []struct {
				date string
				name string
			}{
				{"2025-01-01", "New Year's Day"},
				{"2025-01-20", "Martin Luther King Jr. Day"},
				{"2025-02-17", "Washington and Lincoln Day"},
				{"2025-05-26", "Memorial Day"},
				{"2025-06-19", "Juneteenth"},
				{"2025-07-04", "Independence Day"},
				{"2025-07-24", "Pioneer Day"},
				{"2025-09-01", "Labor Day"},
				{"2025-10-13", "Columbus Day"},
				{"2025-11-11", "Veterans Day"},
				{"2025-11-27", "Thanksgiving Day"},
				{"2025-12-25", "Christmas Day"},
				{"2026-01-01", "New Year's Day"},
				{"2026-01-19", "Martin Luther King Jr. Day"},
				{"2026-02-16", "Washington and Lincoln Day"},
				{"2026-05-25", "Memorial Day"},
				{"2026-06-19", "Juneteenth"},
				{"2026-07-03", "Independence Day (observed)"},
				{"2026-07-24", "Pioneer Day"},
				{"2026-09-07", "Labor Day"},
				{"2026-10-12", "Columbus Day"},
				{"2026-11-11", "Veterans Day"},
				{"2026-11-26", "Thanksgiving Day"},
				{"2026-12-25", "Christmas Day"},
			}
			for _, h := range seedHolidays {
				if _, err := tx.Exec(holidayStmt, h.date, h.name); err != nil {
					return fmt.Errorf("failed to seed holiday %s: %w", h.date, err)
				}
			}

			caseTypeStmt := `INSERT INTO case_type_map (case_type, regime) VALUES (?, ?)`
			seedCaseTypes := []struct {
				caseType string
				regime   string
			}{
				{"divorce", "civil"},
				{"custody", "civil"},
				{"contract dispute", "civil"},
				{"personal injury", "civil"},
				{"probate", "civil"},
				{"eviction", "civil"},
				{"protective order", "civil"},
				{"dui", "criminal"},
				{"felony theft", "criminal"},
				{"misdemeanor assault", "criminal"},
				{"drug possession", "criminal"},
				{"civil appeal", "appeal"},
				{"criminal appeal", "appeal"},
			}
			for _, ct := range seedCaseTypes {
				if _, err := tx.Exec(caseTypeStmt, ct.caseType, ct.regime); err != nil {
					return fmt.Errorf("failed to seed case type %s: %w", ct.caseType, err)
				}
			}

			return nil
		},
	},
}

// SchemaVersion reports the current schema version of the database.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// Migrate brings the database schema up to ExpectedSchemaVersion.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
