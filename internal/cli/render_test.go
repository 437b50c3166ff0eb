package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/praxislegal/docket/internal/model"
)

func TestRenderDeadline(t *testing.T) {
	result := &model.DeadlineComputation{
		DueDate:         time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC),
		WasExtended:     true,
		ExtendedFrom:    time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		ExtensionReason: "Saturday, Sunday",
		RuleCitation:    "URCP 12(a)",
	}
	rule := &model.DeadlineRule{RuleCitation: "URCP 12(a)", Notes: "Answer to complaint"}

	out := RenderDeadline(result, rule)
	for _, want := range []string{"Mar 17 2025", "URCP 12(a)", "Saturday", "Answer to complaint"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Degraded") {
		t.Error("non-degraded result should not carry a degraded warning")
	}
}

func TestRenderDeadline_Degraded(t *testing.T) {
	result := &model.DeadlineComputation{
		DueDate:        time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC),
		RuleCitation:   "URCP 12(a)",
		Degraded:       true,
		DegradedReason: "holiday calendar unavailable: connection refused",
	}

	out := RenderDeadline(result, nil)
	if !strings.Contains(out, "Degraded result") {
		t.Errorf("degraded marker missing:\n%s", out)
	}
}

func TestRenderPredictions(t *testing.T) {
	predictions := []model.Prediction{
		{
			ActivityType:   model.ActivityMotionRuling,
			MostLikely:     "denied",
			MostLikelyPct:  72.7,
			SampleSize:     3,
			ConfidenceTier: model.ConfidenceLow,
			Trend:          model.TrendInsufficient,
			Summary:        `motion_ruling: "denied" most likely at 73% (n=3, low confidence, trend insufficient)`,
			Outcomes: []model.OutcomeEstimate{
				{Outcome: "denied", Probability: 0.727, Count: 2},
				{Outcome: "granted", Probability: 0.273, Count: 1},
			},
			Warnings: []string{"entry 42 has no parseable date and was excluded"},
		},
	}

	out := RenderPredictions("Judge Fowler", predictions)
	for _, want := range []string{"Judge Fowler", "denied", "72.7%", "entry 42"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPredictions_Empty(t *testing.T) {
	out := RenderPredictions("Judge Fowler", nil)
	if !strings.Contains(out, "No activity history") {
		t.Errorf("expected empty-state message, got:\n%s", out)
	}
}
