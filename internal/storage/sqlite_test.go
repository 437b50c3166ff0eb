package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/praxislegal/docket/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func testDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	if _, err := NewSQLiteStorage("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// A second migration run must be a no-op
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("re-running migrations failed: %v", err)
	}
}

func TestMigrate_SeedsReferenceData(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	rules, err := store.ListRules(ctx, model.RegimeCivil)
	if err != nil {
		t.Fatalf("ListRules failed: %v", err)
	}
	if len(rules) == 0 {
		t.Error("expected seeded civil rules")
	}

	isHoliday, name, err := store.IsHoliday(ctx, testDate(2025, time.July, 24))
	if err != nil {
		t.Fatalf("IsHoliday failed: %v", err)
	}
	if !isHoliday || name != "Pioneer Day" {
		t.Errorf("expected Pioneer Day on 2025-07-24, got %v %q", isHoliday, name)
	}

	table, err := store.GetCaseTypeRegimes(ctx)
	if err != nil {
		t.Fatalf("GetCaseTypeRegimes failed: %v", err)
	}
	if table["dui"] != model.RegimeCriminal {
		t.Errorf("expected dui → criminal, got %q", table["dui"])
	}
}
