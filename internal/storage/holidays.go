package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/praxislegal/docket/internal/model"
)

const dateKeyFormat = "2006-01-02"

// IsHoliday reports whether the date is a configured blackout date and,
// if so, its name. Lookups are date-only; time-of-day is ignored.
func (s *SQLiteStorage) IsHoliday(ctx context.Context, date time.Time) (bool, string, error) {
	if err := validateContext(ctx); err != nil {
		return false, "", err
	}
	if date.IsZero() {
		return false, "", fmt.Errorf("%w: date", ErrNilParameter)
	}

	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM holidays WHERE date = ?`,
		date.Format(dateKeyFormat)).Scan(&name)

	if errors.Is(err, sql.ErrNoRows) {
		return false, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("failed to query holiday: %w", err)
	}

	return true, name, nil
}

// SaveHolidays upserts holiday entries. Re-importing a calendar year is
// idempotent.
func (s *SQLiteStorage) SaveHolidays(ctx context.Context, entries []model.HolidayEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateHolidays(entries); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt := `INSERT INTO holidays (date, name) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET name = excluded.name`
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, stmt, e.DateKey(), e.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to save holiday %s: %w", e.DateKey(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit holidays: %w", err)
	}

	slog.Debug("saved holidays", "count", len(entries))
	return nil
}

// ListHolidays returns holidays in [from, to], ordered by date. Zero
// bounds are open.
func (s *SQLiteStorage) ListHolidays(ctx context.Context, from, to time.Time) ([]model.HolidayEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}

	query := `SELECT date, name FROM holidays WHERE 1=1`
	args := make([]any, 0, 2)
	if !from.IsZero() {
		query += ` AND date >= ?`
		args = append(args, from.Format(dateKeyFormat))
	}
	if !to.IsZero() {
		query += ` AND date <= ?`
		args = append(args, to.Format(dateKeyFormat))
	}
	query += ` ORDER BY date`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var entries []model.HolidayEntry
	for rows.Next() {
		var dateStr, name string
		if err := rows.Scan(&dateStr, &name); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		date, parseErr := time.ParseInLocation(dateKeyFormat, dateStr, time.UTC)
		if parseErr != nil {
			return nil, fmt.Errorf("malformed holiday date %q: %w", dateStr, parseErr)
		}
		entries = append(entries, model.HolidayEntry{Date: date, Name: name})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holidays: %w", err)
	}
	return entries, nil
}
