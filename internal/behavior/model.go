package behavior

import (
	"fmt"
	"sort"
	"time"
)

// Learner archetype labels. These are operator conventions attached to
// centroids after fitting; cluster indices themselves carry no meaning.
const (
	LabelGeneral = "General Learner"
	LabelSteady  = "Steady Learner"
	LabelDetail  = "Detail-Oriented"
	LabelFast    = "Fast-Paced"
)

// Model is a trained partition of interaction-feature space. It is
// immutable after training; retraining produces a new versioned instance.
type Model struct {
	Version     string      `json:"version"`
	SampleCount int         `json:"sample_count"`
	Centroids   [][]float64 `json:"centroids"`
	Labels      []string    `json:"labels"`
	CreatedAt   time.Time   `json:"created_at"`
}

// predict returns the archetype label of the nearest centroid.
func (m *Model) predict(features []float64) (string, error) {
	if len(features) != featureCount {
		return "", fmt.Errorf("feature vector has %d elements, want %d", len(features), featureCount)
	}
	if len(m.Centroids) == 0 {
		return "", fmt.Errorf("model has no centroids")
	}

	best := 0
	bestDist := sqDist(features, m.Centroids[0])
	for i := 1; i < len(m.Centroids); i++ {
		if d := sqDist(features, m.Centroids[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return m.Labels[best], nil
}

// labelCentroids derives archetype labels from centroid feature profiles,
// ranking by watch_percentage: the centroid watching the most is
// Detail-Oriented, the one watching the least is Fast-Paced, the rest are
// Steady Learners. Deriving labels from profiles instead of cluster index
// keeps them stable across retrains even if the fit reorders centroids.
func labelCentroids(centroids [][]float64) []string {
	labels := make([]string, len(centroids))
	for i := range labels {
		labels[i] = LabelSteady
	}
	if len(centroids) < 2 {
		return labels
	}

	order := make([]int, len(centroids))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return centroids[order[a]][3] < centroids[order[b]][3]
	})

	labels[order[0]] = LabelFast
	labels[order[len(order)-1]] = LabelDetail
	return labels
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
