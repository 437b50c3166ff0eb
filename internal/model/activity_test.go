package model

import (
	"strings"
	"testing"
	"time"
)

func TestActivityLogEntry_Validate(t *testing.T) {
	valid := ActivityLogEntry{
		ActorName:    "Judge Fowler",
		ActorKind:    ActorKindJudge,
		ActivityType: ActivityMotionRuling,
		Outcome:      "denied",
		Date:         time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		mutate func(*ActivityLogEntry)
		name   string
		errMsg string
	}{
		{
			name:   "valid entry",
			mutate: func(*ActivityLogEntry) {},
		},
		{
			name:   "missing actor name",
			mutate: func(e *ActivityLogEntry) { e.ActorName = "  " },
			errMsg: "actor name is required",
		},
		{
			name:   "unknown actor kind",
			mutate: func(e *ActivityLogEntry) { e.ActorKind = "clerk" },
			errMsg: "unknown actor kind",
		},
		{
			name:   "missing activity type",
			mutate: func(e *ActivityLogEntry) { e.ActivityType = "" },
			errMsg: "activity type is required",
		},
		{
			name:   "missing outcome",
			mutate: func(e *ActivityLogEntry) { e.Outcome = "" },
			errMsg: "outcome is required",
		},
		{
			name:   "missing date",
			mutate: func(e *ActivityLogEntry) { e.Date = time.Time{} },
			errMsg: "date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := valid
			tt.mutate(&entry)
			err := entry.Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Denied", "denied"},
		{"  GRANTED  ", "granted"},
		{"motion_ruling", "motion_ruling"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKnownActivityType(t *testing.T) {
	if !KnownActivityType("Motion_Ruling") {
		t.Error("motion_ruling should be a known activity type")
	}
	if KnownActivityType("bench_conference") {
		t.Error("bench_conference is not in the known set")
	}
}
