// Package behavior classifies learners into archetypes from video
// interaction telemetry, using an unsupervised partition of feature space.
package behavior

import (
	"context"
	"fmt"
)

// featureCount is the fixed width of the interaction feature vector:
// [pause_count, rewatch_count, skip_ratio, watch_percentage].
const featureCount = 4

// Interaction is one batch of per-video telemetry.
type Interaction struct {
	PauseCount      int     `json:"pause_count"`
	RewatchCount    int     `json:"rewatch_count"`
	SkipRatio       float64 `json:"skip_ratio"`
	WatchPercentage float64 `json:"watch_percentage"`
}

// Features returns the interaction as a feature vector in the fixed order
// the cluster model is trained on.
func (in Interaction) Features() []float64 {
	return []float64{
		float64(in.PauseCount),
		float64(in.RewatchCount),
		in.SkipRatio,
		in.WatchPercentage,
	}
}

// Validate checks field ranges. A violation is a caller contract error.
func (in Interaction) Validate() error {
	if in.PauseCount < 0 {
		return fmt.Errorf("pause_count = %d, must be >= 0", in.PauseCount)
	}
	if in.RewatchCount < 0 {
		return fmt.Errorf("rewatch_count = %d, must be >= 0", in.RewatchCount)
	}
	if in.SkipRatio < 0 || in.SkipRatio > 1 {
		return fmt.Errorf("skip_ratio = %v, must be in [0,1]", in.SkipRatio)
	}
	if in.WatchPercentage < 0 || in.WatchPercentage > 100 {
		return fmt.Errorf("watch_percentage = %v, must be in [0,100]", in.WatchPercentage)
	}
	return nil
}

// InteractionRepo is the append-only log collaborator.
type InteractionRepo interface {
	Append(ctx context.Context, userID, videoID string, in Interaction) error
	All(ctx context.Context) ([]Interaction, error)
	// Latest returns the most recent interaction for the pair,
	// reporting found=false if none was ever logged.
	Latest(ctx context.Context, userID, videoID string) (Interaction, bool, error)
}

// ModelRepo persists trained cluster models as opaque versioned artifacts.
type ModelRepo interface {
	SaveModel(ctx context.Context, m *Model) error
	// LatestModel returns the most recently trained model,
	// reporting found=false if no training has ever completed.
	LatestModel(ctx context.Context) (*Model, bool, error)
}
