package storage

import (
	"context"
	"testing"

	"github.com/praxislegal/docket/internal/model"
)

func TestSaveRule_RoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	rule := &model.DeadlineRule{
		Regime:       model.RegimeCivil,
		TriggerEvent: "service of amended complaint",
		Days:         14,
		Direction:    model.DirectionAfter,
		MailAddDays:  7,
		Priority:     20,
		RuleCitation: "URCP 15(a)(3)",
		Notes:        "Answer to amended complaint",
	}

	if err := store.SaveRule(ctx, rule); err != nil {
		t.Fatalf("SaveRule failed: %v", err)
	}
	if rule.ID == 0 {
		t.Error("expected rule ID to be populated after save")
	}

	rules, err := store.GetRules(ctx, model.RegimeCivil, "amended complaint")
	if err != nil {
		t.Fatalf("GetRules failed: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}

	got := rules[0]
	if got.RuleCitation != "URCP 15(a)(3)" {
		t.Errorf("citation mismatch: %q", got.RuleCitation)
	}
	if got.Days != 14 || got.MailAddDays != 7 {
		t.Errorf("day counts mismatch: days=%d mail=%d", got.Days, got.MailAddDays)
	}
	if got.Direction != model.DirectionAfter {
		t.Errorf("direction mismatch: %q", got.Direction)
	}
	if !got.IsActive {
		t.Error("expected saved rule to be active")
	}
}

func TestSaveRule_RejectsInvalid(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	rule := &model.DeadlineRule{
		Regime:       model.RegimeCivil,
		TriggerEvent: "service of summons",
		Days:         -5,
		Direction:    model.DirectionAfter,
		RuleCitation: "URCP 12(a)",
	}
	if err := store.SaveRule(context.Background(), rule); err == nil {
		t.Fatal("expected validation error for negative days")
	}
}

func TestGetRules_SubstringMatch(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// Seeded rule trigger is "service of summons"; a partial query must match
	rules, err := store.GetRules(ctx, model.RegimeCivil, "summons")
	if err != nil {
		t.Fatalf("GetRules failed: %v", err)
	}
	if len(rules) == 0 {
		t.Fatal("expected substring match on seeded rule")
	}
	if rules[0].RuleCitation != "URCP 12(a)" {
		t.Errorf("expected URCP 12(a), got %q", rules[0].RuleCitation)
	}
}

func TestGetRules_NoRegimeMixing(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// "entry of judgment" rules are seeded in civil, criminal, and appeal
	for _, regime := range []model.Regime{model.RegimeCivil, model.RegimeCriminal, model.RegimeAppeal} {
		rules, err := store.GetRules(ctx, regime, "entry of judgment")
		if err != nil {
			t.Fatalf("GetRules(%s) failed: %v", regime, err)
		}
		for _, r := range rules {
			if r.Regime != regime {
				t.Errorf("regime %s query returned rule from %s", regime, r.Regime)
			}
		}
	}
}

func TestGetRules_PriorityOrdering(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	high := &model.DeadlineRule{
		Regime:       model.RegimeCivil,
		TriggerEvent: "expedited hearing set",
		Days:         3,
		Direction:    model.DirectionBefore,
		Priority:     50,
		RuleCitation: "Local Rule 7-1",
	}
	low := &model.DeadlineRule{
		Regime:       model.RegimeCivil,
		TriggerEvent: "expedited hearing set",
		Days:         7,
		Direction:    model.DirectionBefore,
		Priority:     1,
		RuleCitation: "URCP 6(b)",
	}
	if err := store.SaveRule(ctx, low); err != nil {
		t.Fatalf("SaveRule failed: %v", err)
	}
	if err := store.SaveRule(ctx, high); err != nil {
		t.Fatalf("SaveRule failed: %v", err)
	}

	rules, err := store.GetRules(ctx, model.RegimeCivil, "expedited hearing")
	if err != nil {
		t.Fatalf("GetRules failed: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Priority != 50 {
		t.Errorf("expected highest priority first, got %d", rules[0].Priority)
	}
}
