package prediction

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/praxislegal/docket/internal/model"
	"github.com/praxislegal/docket/internal/service"
)

// Service exposes the prediction API over the activity log store. The
// engine itself never reads a clock; the service supplies now at the
// boundary and tests inject a fixed one.
type Service struct {
	log    service.ActivityLog
	engine *Engine
	now    func() time.Time
}

// NewService creates a prediction service over the given activity log.
func NewService(log service.ActivityLog, engine *Engine) *Service {
	return &Service{
		log:    log,
		engine: engine,
		now:    time.Now,
	}
}

// WithNow overrides the clock, for deterministic tests and snapshots.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetPredictions returns ranked predictions across all of an actor's
// activity groups.
func (s *Service) GetPredictions(ctx context.Context, actorName string) ([]model.Prediction, error) {
	entries, err := s.log.FetchEntries(ctx, actorName, service.EntryFilter{})
	if err != nil {
		return nil, fmt.Errorf("fetching activity log for %q: %w", actorName, err)
	}

	predictions := s.engine.ComputePredictions(entries, s.now())
	slog.Debug("computed predictions",
		"actor", actorName,
		"entries", len(entries),
		"groups", len(predictions))
	return predictions, nil
}

// GetPrediction returns the prediction for one (activity type, subtype)
// group, or nil when the actor has no observations for it.
func (s *Service) GetPrediction(ctx context.Context, actorName, activityType, activitySubtype string) (*model.Prediction, error) {
	entries, err := s.log.FetchEntries(ctx, actorName, service.EntryFilter{
		ActivityType:    activityType,
		ActivitySubtype: activitySubtype,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching activity log for %q: %w", actorName, err)
	}

	predictions := s.engine.ComputePredictions(entries, s.now())

	wantType := model.NormalizeCategory(activityType)
	wantSubtype := model.NormalizeCategory(activitySubtype)
	for i := range predictions {
		if predictions[i].ActivityType == wantType && predictions[i].ActivitySubtype == wantSubtype {
			return &predictions[i], nil
		}
	}
	return nil, nil
}

// actorResult pairs one actor's predictions with any fetch error.
type actorResult struct {
	actor       string
	predictions []model.Prediction
	err         error
}

// GetPredictionsForActors computes predictions for each actor
// concurrently. Per-actor computations share no mutable state, so one
// goroutine per actor with a join is safe.
func (s *Service) GetPredictionsForActors(ctx context.Context, actors []string) (map[string][]model.Prediction, error) {
	results := make(chan actorResult, len(actors))

	var wg sync.WaitGroup
	for _, actor := range actors {
		wg.Add(1)
		go func(actor string) {
			defer wg.Done()
			predictions, err := s.GetPredictions(ctx, actor)
			results <- actorResult{actor: actor, predictions: predictions, err: err}
		}(actor)
	}
	wg.Wait()
	close(results)

	byActor := make(map[string][]model.Prediction, len(actors))
	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		byActor[r.actor] = r.predictions
	}

	if firstErr != nil {
		return byActor, firstErr
	}
	return byActor, nil
}
