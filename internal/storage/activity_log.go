package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/praxislegal/docket/internal/model"
	"github.com/praxislegal/docket/internal/service"
)

// AppendEntry records one activity log observation. The log is
// append-only: no update or delete statements exist in this package.
func (s *SQLiteStorage) AppendEntry(ctx context.Context, entry *model.ActivityLogEntry) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateLogEntry(entry); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO activity_log
			(actor_name, actor_kind, activity_type, activity_subtype, outcome, party_role, date, case_number, details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		entry.ActorName, string(entry.ActorKind), entry.ActivityType, entry.ActivitySubtype,
		entry.Outcome, entry.PartyRole, entry.Date, entry.CaseNumber, entry.Details)
	if err != nil {
		return 0, fmt.Errorf("failed to append activity log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get entry id: %w", err)
	}
	entry.ID = id

	slog.Debug("appended activity log entry",
		"id", id,
		"actor", entry.ActorName,
		"activity_type", entry.ActivityType)
	return id, nil
}

// FetchEntries returns an actor's log entries in chronological order,
// optionally filtered by activity type/subtype.
func (s *SQLiteStorage) FetchEntries(ctx context.Context, actorName string, filter service.EntryFilter) ([]model.ActivityLogEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(actorName, "actorName"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, actor_name, actor_kind, activity_type, COALESCE(activity_subtype, ''),
		       outcome, COALESCE(party_role, ''), date, COALESCE(case_number, ''),
		       COALESCE(details, ''), created_at
		FROM activity_log
		WHERE actor_name = ? COLLATE NOCASE`
	args := []any{actorName}

	if filter.ActivityType != "" {
		query += ` AND activity_type = ? COLLATE NOCASE`
		args = append(args, filter.ActivityType)
	}
	if filter.ActivitySubtype != "" {
		query += ` AND activity_subtype = ? COLLATE NOCASE`
		args = append(args, filter.ActivitySubtype)
	}
	query += ` ORDER BY date, id`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity log: %w", err)
	}
	defer rows.Close()

	var entries []model.ActivityLogEntry
	for rows.Next() {
		var e model.ActivityLogEntry
		var kind string
		if err := rows.Scan(&e.ID, &e.ActorName, &kind, &e.ActivityType, &e.ActivitySubtype,
			&e.Outcome, &e.PartyRole, &e.Date, &e.CaseNumber, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity log entry: %w", err)
		}
		e.ActorKind = model.ActorKind(kind)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity log: %w", err)
	}

	slog.Debug("fetched activity log entries", "actor", actorName, "count", len(entries))
	return entries, nil
}

// ListActors returns the distinct actor names present in the log.
func (s *SQLiteStorage) ListActors(ctx context.Context) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT actor_name FROM activity_log ORDER BY actor_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query actors: %w", err)
	}
	defer rows.Close()

	var actors []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan actor name: %w", err)
		}
		actors = append(actors, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating actors: %w", err)
	}
	return actors, nil
}
