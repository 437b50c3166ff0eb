package storage

import (
	"context"
	"testing"
	"time"

	"github.com/praxislegal/docket/internal/model"
	"github.com/praxislegal/docket/internal/service"
)

func appendTestEntry(t *testing.T, store *SQLiteStorage, actor, activityType, outcome string, date time.Time) int64 {
	t.Helper()
	entry := &model.ActivityLogEntry{
		ActorName:    actor,
		ActorKind:    model.ActorKindJudge,
		ActivityType: activityType,
		Outcome:      outcome,
		Date:         date,
	}
	id, err := store.AppendEntry(context.Background(), entry)
	if err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}
	return id
}

func TestAppendEntry_AssignsID(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	id := appendTestEntry(t, store, "Judge Fowler", model.ActivityMotionRuling, "denied",
		testDate(2025, time.April, 2))
	if id == 0 {
		t.Error("expected non-zero entry id")
	}
}

func TestAppendEntry_RejectsInvalid(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	entry := &model.ActivityLogEntry{
		ActorName:    "Judge Fowler",
		ActorKind:    model.ActorKind("bystander"),
		ActivityType: model.ActivityMotionRuling,
		Outcome:      "denied",
		Date:         testDate(2025, time.April, 2),
	}
	if _, err := store.AppendEntry(context.Background(), entry); err == nil {
		t.Fatal("expected error for unknown actor kind")
	}
}

func TestFetchEntries_ChronologicalAndFiltered(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	appendTestEntry(t, store, "Judge Fowler", model.ActivityMotionRuling, "denied",
		testDate(2025, time.June, 10))
	appendTestEntry(t, store, "Judge Fowler", model.ActivityMotionRuling, "granted",
		testDate(2025, time.January, 5))
	appendTestEntry(t, store, "Judge Fowler", model.ActivityContinuance, "granted",
		testDate(2025, time.March, 1))
	appendTestEntry(t, store, "Judge Marsh", model.ActivityMotionRuling, "granted",
		testDate(2025, time.February, 1))

	all, err := store.FetchEntries(ctx, "Judge Fowler", service.EntryFilter{})
	if err != nil {
		t.Fatalf("FetchEntries failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Date.Before(all[i-1].Date) {
			t.Error("entries not in chronological order")
			break
		}
	}

	motions, err := store.FetchEntries(ctx, "judge fowler", service.EntryFilter{
		ActivityType: model.ActivityMotionRuling,
	})
	if err != nil {
		t.Fatalf("FetchEntries with filter failed: %v", err)
	}
	if len(motions) != 2 {
		t.Errorf("expected 2 motion rulings (case-insensitive actor), got %d", len(motions))
	}
}

func TestListActors(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	appendTestEntry(t, store, "Judge Fowler", model.ActivityMotionRuling, "denied",
		testDate(2025, time.June, 10))
	appendTestEntry(t, store, "Judge Fowler", model.ActivityContinuance, "granted",
		testDate(2025, time.June, 11))
	appendTestEntry(t, store, "Counsel Reyes", model.ActivitySettlementStance, "aggressive",
		testDate(2025, time.June, 12))

	actors, err := store.ListActors(context.Background())
	if err != nil {
		t.Fatalf("ListActors failed: %v", err)
	}
	if len(actors) != 2 {
		t.Fatalf("expected 2 distinct actors, got %d", len(actors))
	}
	if actors[0] != "Counsel Reyes" || actors[1] != "Judge Fowler" {
		t.Errorf("unexpected actor ordering: %v", actors)
	}
}
