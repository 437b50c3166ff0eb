package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/praxislegal/docket/internal/classification"
	"github.com/praxislegal/docket/internal/config"
	"github.com/praxislegal/docket/internal/deadline"
	"github.com/praxislegal/docket/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initClassifier wires the case-type classifier over a fresh holiday
// cache and the configured calculator constants.
func initClassifier(ctx context.Context, store *storage.SQLiteStorage) (*classification.Classifier, error) {
	table, err := store.GetCaseTypeRegimes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading case type table: %w", err)
	}

	holidays := deadline.NewCachedHolidays(store)
	if err := holidays.Refresh(ctx); err != nil {
		// The calculator falls back to weekend-only rollover and
		// flags the result as degraded.
		slog.Warn("holiday calendar unavailable, computing dates in degraded mode", "error", err)
	}

	calcConfig := deadline.DefaultConfig()
	if v := viper.GetInt("deadline.max_rollover"); v > 0 {
		calcConfig.MaxRollover = v
	}
	if v := viper.GetInt("deadline.mail_add_days"); v > 0 {
		calcConfig.DefaultMailAddDays = v
	}

	calculator := deadline.NewWithConfig(holidays, calcConfig)
	return classification.New(store, calculator, table), nil
}
