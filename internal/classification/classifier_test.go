package classification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/praxislegal/docket/internal/common"
	"github.com/praxislegal/docket/internal/deadline"
	"github.com/praxislegal/docket/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuleStore serves canned rules and records which regime was queried.
type fakeRuleStore struct {
	rules          map[model.Regime][]model.DeadlineRule
	queriedRegimes []model.Regime
}

func (f *fakeRuleStore) GetRules(_ context.Context, regime model.Regime, triggerEvent string) ([]model.DeadlineRule, error) {
	f.queriedRegimes = append(f.queriedRegimes, regime)
	var matched []model.DeadlineRule
	for _, r := range f.rules[regime] {
		if containsFold(r.TriggerEvent, triggerEvent) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeRuleStore) SaveRule(context.Context, *model.DeadlineRule) error {
	return nil
}

func (f *fakeRuleStore) ListRules(_ context.Context, regime model.Regime) ([]model.DeadlineRule, error) {
	return f.rules[regime], nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(model.NormalizeCategory(haystack), model.NormalizeCategory(needle))
}

// noHolidays reports no date as a holiday.
type noHolidays struct{}

func (noHolidays) IsHoliday(context.Context, time.Time) (bool, string, error) {
	return false, "", nil
}

func testTable() map[string]model.Regime {
	return map[string]model.Regime{
		"divorce":         model.RegimeCivil,
		"dui":             model.RegimeCriminal,
		"criminal appeal": model.RegimeAppeal,
	}
}

func TestResolveRegime(t *testing.T) {
	classifier := New(&fakeRuleStore{}, deadline.New(noHolidays{}), testTable())

	tests := []struct {
		name     string
		caseType string
		want     model.Regime
	}{
		{name: "exact table match", caseType: "divorce", want: model.RegimeCivil},
		{name: "table match is case-insensitive", caseType: "  DUI ", want: model.RegimeCriminal},
		{name: "table beats keywords", caseType: "criminal appeal", want: model.RegimeAppeal},
		{name: "felony keyword", caseType: "felony aggravated burglary", want: model.RegimeCriminal},
		{name: "appeal keyword wins over criminal keyword", caseType: "appeal of felony conviction", want: model.RegimeAppeal},
		{name: "certiorari keyword", caseType: "petition for certiorari", want: model.RegimeAppeal},
		{name: "unmatched text defaults to civil", caseType: "boundary dispute", want: model.RegimeCivil},
		{name: "empty input defaults to civil", caseType: "", want: model.RegimeCivil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.ResolveRegime(tt.caseType))
		})
	}
}

func TestFindRules_OrderAndMiss(t *testing.T) {
	store := &fakeRuleStore{rules: map[model.Regime][]model.DeadlineRule{
		model.RegimeCivil: {
			{Regime: model.RegimeCivil, TriggerEvent: "service of summons", Days: 21,
				Direction: model.DirectionAfter, Priority: 10, RuleCitation: "URCP 12(a)"},
		},
	}}
	classifier := New(store, deadline.New(noHolidays{}), testTable())
	ctx := context.Background()

	rules, err := classifier.FindRules(ctx, model.RegimeCivil, "summons")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "URCP 12(a)", rules[0].RuleCitation)

	_, err = classifier.FindRules(ctx, model.RegimeCivil, "writ of replevin")
	require.Error(t, err)

	var rnf *common.RuleNotFoundError
	require.True(t, errors.As(err, &rnf))
	assert.Equal(t, "civil", rnf.Regime)
	assert.Equal(t, "writ of replevin", rnf.TriggerEvent)
}

func TestFindRules_EmptyTriggerEvent(t *testing.T) {
	classifier := New(&fakeRuleStore{}, deadline.New(noHolidays{}), nil)

	_, err := classifier.FindRules(context.Background(), model.RegimeCivil, "  ")
	require.Error(t, err)

	var valErr *common.ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestComputeDeadline_EndToEnd(t *testing.T) {
	store := &fakeRuleStore{rules: map[model.Regime][]model.DeadlineRule{
		model.RegimeCivil: {
			{Regime: model.RegimeCivil, TriggerEvent: "service of summons", Days: 14,
				Direction: model.DirectionAfter, Priority: 10, RuleCitation: "URCP 12(a)"},
		},
	}}
	classifier := New(store, deadline.New(noHolidays{}), testTable())

	result, rule, err := classifier.ComputeDeadline(context.Background(), DeadlineRequest{
		TriggerDate:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		CaseType:      "divorce",
		TriggerEvent:  "service of summons",
		ServiceMethod: "electronic",
	})
	require.NoError(t, err)

	// Raw target 2025-03-15 is a Saturday; weekend rollover to Monday
	assert.Equal(t, time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC), result.DueDate)
	assert.Equal(t, "URCP 12(a)", result.RuleCitation)
	assert.Equal(t, "URCP 12(a)", rule.RuleCitation)
	assert.True(t, result.WasExtended)
}

func TestComputeDeadline_QueriesSingleRegime(t *testing.T) {
	store := &fakeRuleStore{rules: map[model.Regime][]model.DeadlineRule{
		model.RegimeCriminal: {
			{Regime: model.RegimeCriminal, TriggerEvent: "arraignment", Days: 28,
				Direction: model.DirectionAfter, Priority: 10, RuleCitation: "URCrP 12(c)"},
		},
	}}
	classifier := New(store, deadline.New(noHolidays{}), testTable())

	_, _, err := classifier.ComputeDeadline(context.Background(), DeadlineRequest{
		TriggerDate:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		CaseType:      "dui",
		TriggerEvent:  "arraignment",
		ServiceMethod: "electronic",
	})
	require.NoError(t, err)

	// A single computation never blends rules from two regimes
	require.Len(t, store.queriedRegimes, 1)
	assert.Equal(t, model.RegimeCriminal, store.queriedRegimes[0])
}
