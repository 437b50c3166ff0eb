// Package prediction implements the predictive outcome engine:
// recency-weighted, smoothed probability estimates of how a judge or
// opposing counsel will rule or behave, computed from append-only
// activity logs.
package prediction

import (
	"fmt"
	"sort"
	"time"

	"github.com/praxislegal/docket/internal/model"
)

// Config holds the statistical constants of the engine. The values
// mirror the firm's established practice; they are tunable but are
// never re-derived from data.
type Config struct {
	// Recency buckets: entries younger than RecentWindowDays carry
	// RecentWeight, younger than MidWindowDays carry MidWeight, and
	// everything older carries OldWeight. Older evidence is never
	// discarded, only discounted.
	RecentWindowDays int
	MidWindowDays    int
	RecentWeight     float64
	MidWeight        float64
	OldWeight        float64

	// PriorStrength is the total prior mass added by additive
	// smoothing, split uniformly across observed outcomes.
	PriorStrength float64

	// Trend compares the top outcome's rate over the last TrendWindow
	// entries against its overall smoothed probability, using a
	// ±TrendThreshold band. Below MinTrendSample entries the trend is
	// reported as insufficient.
	TrendWindow    int
	TrendThreshold float64
	MinTrendSample int

	// MinRoleEntries gates the per-party-role breakdown.
	MinRoleEntries int

	// Confidence tier sample thresholds.
	HighTierSample     int
	ModerateTierSample int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		RecentWindowDays:   180,
		MidWindowDays:      365,
		RecentWeight:       2.0,
		MidWeight:          1.0,
		OldWeight:          0.5,
		PriorStrength:      2.0,
		TrendWindow:        3,
		TrendThreshold:     0.15,
		MinTrendSample:     5,
		MinRoleEntries:     2,
		HighTierSample:     10,
		ModerateTierSample: 5,
	}
}

// Engine computes predictions. It is stateless: ComputePredictions is a
// pure function of its inputs and safe for concurrent use.
type Engine struct {
	config Config
}

// New creates an engine with the default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an engine with custom constants.
func NewWithConfig(config Config) *Engine {
	return &Engine{config: config}
}

// groupKey identifies one (activity type, subtype) prediction group.
type groupKey struct {
	activityType string
	subtype      string
}

// ComputePredictions groups the entries by activity type and subtype
// and produces one ranked, confidence-scored prediction per group,
// best-evidenced groups first. now anchors recency weighting and is an
// explicit parameter so identical inputs always produce identical
// outputs.
func (e *Engine) ComputePredictions(entries []model.ActivityLogEntry, now time.Time) []model.Prediction {
	if len(entries) == 0 {
		return []model.Prediction{}
	}

	groups := make(map[groupKey][]model.ActivityLogEntry)
	warnings := make(map[groupKey][]string)
	for _, entry := range entries {
		key := groupKey{
			activityType: model.NormalizeCategory(entry.ActivityType),
			subtype:      model.NormalizeCategory(entry.ActivitySubtype),
		}
		if entry.Date.IsZero() {
			// Excluded from weighting, but never silently: the gap is
			// reported on the group it would have joined.
			warnings[key] = append(warnings[key],
				fmt.Sprintf("entry %d has no parseable date and was excluded", entry.ID))
			continue
		}
		groups[key] = append(groups[key], entry)
	}

	results := make(model.Predictions, 0, len(groups))
	for key, group := range groups {
		prediction := e.computeGroup(key, group, now)
		prediction.Warnings = warnings[key]
		results = append(results, prediction)
	}

	// A group whose every entry was excluded forms no prediction, but
	// its warnings still have to reach the caller.
	for key, ws := range warnings {
		if _, ok := groups[key]; ok {
			continue
		}
		results = append(results, model.Prediction{
			ActivityType:    key.activityType,
			ActivitySubtype: key.subtype,
			ConfidenceTier:  model.ConfidenceLow,
			Trend:           model.TrendInsufficient,
			Warnings:        ws,
			Summary: fmt.Sprintf("%s: no prediction, all %d entries excluded for data quality",
				groupLabel(key.activityType, key.subtype), len(ws)),
		})
	}

	sort.Sort(results)
	return results
}

// computeGroup runs the full pipeline for one group: weighting,
// smoothing, ranking, tiering, trend, and role segmentation.
func (e *Engine) computeGroup(key groupKey, group []model.ActivityLogEntry, now time.Time) model.Prediction {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Date.Before(group[j].Date)
	})

	estimates := e.smoothedEstimates(group, now)
	top := estimates[0]

	prediction := model.Prediction{
		ActivityType:    key.activityType,
		ActivitySubtype: key.subtype,
		Outcomes:        estimates,
		MostLikely:      top.Outcome,
		MostLikelyPct:   top.Probability * 100,
		SampleSize:      len(group),
		ConfidenceTier:  e.tierFor(len(group)),
	}
	prediction.Trend = e.trendFor(group, top)
	prediction.ByRole = e.roleBreakdown(group, now)
	prediction.Summary = e.summarize(&prediction)

	return prediction
}

// smoothedEstimates computes recency-weighted, additively smoothed
// outcome probabilities, ranked descending. Within a group the
// probabilities sum to 1 up to rounding.
func (e *Engine) smoothedEstimates(group []model.ActivityLogEntry, now time.Time) []model.OutcomeEstimate {
	weighted := make(map[string]float64)
	rawCounts := make(map[string]int)
	var totalWeighted float64

	for _, entry := range group {
		outcome := model.NormalizeCategory(entry.Outcome)
		w := e.recencyWeight(entry.Date, now)
		weighted[outcome] += w
		rawCounts[outcome]++
		totalWeighted += w
	}

	// Uniform prior across observed outcomes, with a floor of 2 so a
	// single-outcome group never reports certainty.
	priorShare := 1.0 / float64(max(len(weighted), 2))

	estimates := make([]model.OutcomeEstimate, 0, len(weighted))
	for outcome, w := range weighted {
		estimates = append(estimates, model.OutcomeEstimate{
			Outcome:     outcome,
			Probability: (w + e.config.PriorStrength*priorShare) / (totalWeighted + e.config.PriorStrength),
			Count:       rawCounts[outcome],
		})
	}

	sort.Slice(estimates, func(i, j int) bool {
		if estimates[i].Probability != estimates[j].Probability {
			return estimates[i].Probability > estimates[j].Probability
		}
		return estimates[i].Outcome < estimates[j].Outcome
	})

	return estimates
}

// recencyWeight returns the evidence weight of an observation by age.
func (e *Engine) recencyWeight(date, now time.Time) float64 {
	ageDays := now.Sub(date).Hours() / 24
	switch {
	case ageDays < float64(e.config.RecentWindowDays):
		return e.config.RecentWeight
	case ageDays < float64(e.config.MidWindowDays):
		return e.config.MidWeight
	default:
		return e.config.OldWeight
	}
}

// tierFor maps a raw sample size to a confidence tier.
func (e *Engine) tierFor(sampleSize int) model.ConfidenceTier {
	switch {
	case sampleSize >= e.config.HighTierSample:
		return model.ConfidenceHigh
	case sampleSize >= e.config.ModerateTierSample:
		return model.ConfidenceModerate
	default:
		return model.ConfidenceLow
	}
}

// trendFor compares the top outcome's rate among the chronologically
// last entries to its overall smoothed probability. Deliberately a
// simple, explainable heuristic: sample sizes here are tens, not
// thousands, and a time-series model would suggest precision the
// evidence cannot support.
func (e *Engine) trendFor(group []model.ActivityLogEntry, top model.OutcomeEstimate) model.Trend {
	if len(group) < e.config.MinTrendSample {
		return model.TrendInsufficient
	}

	window := group[len(group)-e.config.TrendWindow:]
	var hits int
	for _, entry := range window {
		if model.NormalizeCategory(entry.Outcome) == top.Outcome {
			hits++
		}
	}
	recentRate := float64(hits) / float64(len(window))

	diff := recentRate - top.Probability
	switch {
	case diff > e.config.TrendThreshold:
		return model.TrendIncreasing
	case diff < -e.config.TrendThreshold:
		return model.TrendDecreasing
	default:
		return model.TrendStable
	}
}

// roleBreakdown repeats weighting and smoothing per party-role
// subgroup. Outcomes are highly role-dependent, so the breakdown is a
// first-class output whenever at least MinRoleEntries entries carry a
// role.
func (e *Engine) roleBreakdown(group []model.ActivityLogEntry, now time.Time) map[string]model.RolePrediction {
	byRole := make(map[string][]model.ActivityLogEntry)
	var withRole int
	for _, entry := range group {
		role := model.NormalizeCategory(entry.PartyRole)
		if role == "" {
			continue
		}
		withRole++
		byRole[role] = append(byRole[role], entry)
	}
	if withRole < e.config.MinRoleEntries {
		return nil
	}

	breakdown := make(map[string]model.RolePrediction, len(byRole))
	for role, subgroup := range byRole {
		estimates := e.smoothedEstimates(subgroup, now)
		top := estimates[0]
		breakdown[role] = model.RolePrediction{
			MostLikely:  top.Outcome,
			Probability: top.Probability,
			Count:       len(subgroup),
			Summary: fmt.Sprintf("as %s: %q at %.0f%% (n=%d)",
				role, top.Outcome, top.Probability*100, len(subgroup)),
		}
	}
	return breakdown
}

// summarize renders the one-line template summary for a group.
func (e *Engine) summarize(p *model.Prediction) string {
	return fmt.Sprintf("%s: %q most likely at %.0f%% (n=%d, %s confidence, trend %s)",
		groupLabel(p.ActivityType, p.ActivitySubtype), p.MostLikely, p.MostLikelyPct,
		p.SampleSize, p.ConfidenceTier, p.Trend)
}

func groupLabel(activityType, subtype string) string {
	if subtype != "" {
		return fmt.Sprintf("%s (%s)", activityType, subtype)
	}
	return activityType
}
