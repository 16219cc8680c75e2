package behavior

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/edubox/adapt/internal/config"
)

// ErrInsufficientData reports a training call with fewer samples than the
// configured minimum. It is a status, not a fault: the previous model (if
// any) stays in service.
var ErrInsufficientData = errors.New("behavior: insufficient data to train")

// Classifier owns the interaction log and the cluster model lifecycle.
//
// Predict is lock-free: the active model lives behind an atomic pointer
// and a completed Train swaps it in whole, so readers see either the old
// or the new model, never a partial one. Train itself holds a mutex, so
// only one fit is in flight at a time.
type Classifier struct {
	cfg          config.BehaviorConfig
	interactions InteractionRepo
	models       ModelRepo

	trainMu sync.Mutex
	model   atomic.Pointer[Model]
}

// NewClassifier creates a Classifier. No model is active until Train
// succeeds or LoadLatest finds a persisted artifact.
func NewClassifier(cfg config.BehaviorConfig, interactions InteractionRepo, models ModelRepo) *Classifier {
	return &Classifier{
		cfg:          cfg,
		interactions: interactions,
		models:       models,
	}
}

// LoadLatest activates the most recently persisted model, if any.
// Called once at startup; a missing artifact is not an error.
func (c *Classifier) LoadLatest(ctx context.Context) error {
	m, found, err := c.models.LatestModel(ctx)
	if err != nil {
		return fmt.Errorf("load latest model: %w", err)
	}
	if found {
		c.model.Store(m)
	}
	return nil
}

// Log validates and appends one telemetry record.
func (c *Classifier) Log(ctx context.Context, userID, videoID string, in Interaction) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("invalid interaction: %w", err)
	}
	if err := c.interactions.Append(ctx, userID, videoID, in); err != nil {
		return fmt.Errorf("append interaction: %w", err)
	}
	return nil
}

// Train fits a new cluster model over the full interaction log and swaps
// it in atomically. Returns ErrInsufficientData below the sample minimum.
func (c *Classifier) Train(ctx context.Context) (*Model, error) {
	c.trainMu.Lock()
	defer c.trainMu.Unlock()

	records, err := c.interactions.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	if len(records) < c.cfg.MinSamples {
		return nil, fmt.Errorf("%w: have %d records, need %d",
			ErrInsufficientData, len(records), c.cfg.MinSamples)
	}

	points := make([][]float64, len(records))
	for i, r := range records {
		points[i] = r.Features()
	}

	centroids := kmeansFit(points, c.cfg.Clusters, c.cfg.Seed)
	m := &Model{
		Version:     uuid.NewString(),
		SampleCount: len(records),
		Centroids:   centroids,
		Labels:      labelCentroids(centroids),
		CreatedAt:   time.Now().UTC(),
	}

	if err := c.models.SaveModel(ctx, m); err != nil {
		return nil, fmt.Errorf("save model: %w", err)
	}
	c.model.Store(m)
	return m, nil
}

// Predict returns the archetype label for a feature vector. Failures are
// absorbed: with no trained model, or a malformed vector, the neutral
// default label is returned so classification never blocks the caller.
func (c *Classifier) Predict(features []float64) string {
	m := c.model.Load()
	if m == nil {
		return LabelGeneral
	}
	label, err := m.predict(features)
	if err != nil {
		return LabelGeneral
	}
	return label
}

// PredictLatest classifies the most recent telemetry for a (user, video)
// pair, falling back to the neutral label when none was ever logged.
func (c *Classifier) PredictLatest(ctx context.Context, userID, videoID string) string {
	in, found, err := c.interactions.Latest(ctx, userID, videoID)
	if err != nil || !found {
		return LabelGeneral
	}
	return c.Predict(in.Features())
}
