package speed

import "github.com/edubox/adapt/internal/config"

// Speed labels for average per-question response time.
const (
	LabelFast   = "Fast"
	LabelSteady = "Steady"
	LabelSlow   = "Slow"
)

// Decision is the outcome of one adaptation call.
type Decision struct {
	NewDifficulty Difficulty
	SpeedLabel    string
}

// Adapter is a stateless difficulty adapter over configurable thresholds.
type Adapter struct {
	fastThreshold float64 // seconds; avg_time below this is "Fast"
	slowThreshold float64 // seconds; avg_time above this is "Slow"
}

// NewAdapter creates an Adapter from config.
func NewAdapter(cfg config.SpeedConfig) *Adapter {
	return &Adapter{
		fastThreshold: cfg.FastThreshold,
		slowThreshold: cfg.SlowThreshold,
	}
}

// Adapt decides the next difficulty from the current quiz outcome.
// A high score answered fast steps difficulty up one level; a low score
// answered slow steps it down. Everything else holds the level. Steps
// clamp at the extremes and never move more than one level.
func (a *Adapter) Adapt(score, avgTime float64, current Difficulty) Decision {
	next := current
	switch {
	case score >= 80 && avgTime < a.fastThreshold:
		next = current.Harder()
	case score < 50 && avgTime > a.slowThreshold:
		next = current.Easier()
	}
	return Decision{
		NewDifficulty: next,
		SpeedLabel:    a.label(avgTime),
	}
}

func (a *Adapter) label(avgTime float64) string {
	switch {
	case avgTime < a.fastThreshold:
		return LabelFast
	case avgTime > a.slowThreshold:
		return LabelSlow
	}
	return LabelSteady
}
