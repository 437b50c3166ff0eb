package model

import "fmt"

// ConfidenceTier is a coarse label summarizing the evidence volume
// behind a prediction.
type ConfidenceTier string

// Confidence tier constants.
const (
	ConfidenceLow      ConfidenceTier = "low"
	ConfidenceModerate ConfidenceTier = "moderate"
	ConfidenceHigh     ConfidenceTier = "high"
)

// Trend describes how the top-ranked outcome's recent rate compares to
// its overall rate.
type Trend string

// Trend constants.
const (
	TrendIncreasing   Trend = "increasing"
	TrendStable       Trend = "stable"
	TrendDecreasing   Trend = "decreasing"
	TrendInsufficient Trend = "insufficient"
)

// OutcomeEstimate is one outcome's smoothed probability plus the raw
// observation count behind it.
type OutcomeEstimate struct {
	Outcome     string
	Probability float64
	Count       int
}

// RolePrediction is the per-party-role breakdown of a prediction group.
type RolePrediction struct {
	MostLikely  string
	Summary     string
	Probability float64
	Count       int
}

// Prediction is the ranked, confidence-scored estimate for one
// (activity type, subtype) group of an actor's history.
type Prediction struct {
	ByRole          map[string]RolePrediction
	ActivityType    string
	ActivitySubtype string
	MostLikely      string
	Summary         string
	Outcomes        []OutcomeEstimate
	Warnings        []string
	MostLikelyPct   float64
	SampleSize      int
	ConfidenceTier  ConfidenceTier
	Trend           Trend
}

// Validate checks internal consistency of a computed prediction.
func (p *Prediction) Validate() error {
	if p.ActivityType == "" {
		return fmt.Errorf("activity type is required")
	}
	if len(p.Outcomes) == 0 {
		return fmt.Errorf("prediction must carry at least one outcome")
	}
	if p.SampleSize <= 0 {
		return fmt.Errorf("sample size must be positive, got %d", p.SampleSize)
	}
	var sum float64
	for _, o := range p.Outcomes {
		if o.Probability < 0 || o.Probability > 1 {
			return fmt.Errorf("probability out of range for %q: %f", o.Outcome, o.Probability)
		}
		sum += o.Probability
	}
	if len(p.Outcomes) == 1 {
		// Smoothing reserves prior mass for the unseen alternative, so
		// a sole outcome legitimately sums strictly below 1.
		if sum <= 0 || sum > 1.01 {
			return fmt.Errorf("single-outcome probability out of range: %f", sum)
		}
		return nil
	}
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("probabilities must sum to 1, got %f", sum)
	}
	return nil
}

// Predictions is a slice of Prediction that sorts best-evidenced first.
type Predictions []Prediction

// Len implements sort.Interface.
func (p Predictions) Len() int {
	return len(p)
}

// Less implements sort.Interface - larger samples come first.
func (p Predictions) Less(i, j int) bool {
	if p[i].SampleSize != p[j].SampleSize {
		return p[i].SampleSize > p[j].SampleSize
	}
	if p[i].ActivityType != p[j].ActivityType {
		return p[i].ActivityType < p[j].ActivityType
	}
	return p[i].ActivitySubtype < p[j].ActivitySubtype
}

// Swap implements sort.Interface.
func (p Predictions) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}
