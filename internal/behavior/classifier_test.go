package behavior

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/edubox/adapt/internal/config"
)

type memInteractionRepo struct {
	mu      sync.Mutex
	records []Interaction
	keys    []string
}

func (r *memInteractionRepo) Append(_ context.Context, userID, videoID string, in Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, in)
	r.keys = append(r.keys, userID+"/"+videoID)
	return nil
}

func (r *memInteractionRepo) All(_ context.Context) ([]Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Interaction, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memInteractionRepo) Latest(_ context.Context, userID, videoID string) (Interaction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userID + "/" + videoID
	for i := len(r.keys) - 1; i >= 0; i-- {
		if r.keys[i] == key {
			return r.records[i], true, nil
		}
	}
	return Interaction{}, false, nil
}

type memModelRepo struct {
	mu     sync.Mutex
	models []*Model
}

func (r *memModelRepo) SaveModel(_ context.Context, m *Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models = append(r.models, m)
	return nil
}

func (r *memModelRepo) LatestModel(_ context.Context) (*Model, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.models) == 0 {
		return nil, false, nil
	}
	return r.models[len(r.models)-1], true, nil
}

func newTestClassifier() (*Classifier, *memInteractionRepo, *memModelRepo) {
	interactions := &memInteractionRepo{}
	models := &memModelRepo{}
	c := NewClassifier(config.Default().Behavior, interactions, models)
	return c, interactions, models
}

// threeGroups returns telemetry with three well-separated behavior
// profiles: thorough watchers, skimmers and a middle group.
func threeGroups() []Interaction {
	return []Interaction{
		// Detail-oriented: many pauses and rewatches, near-complete watch.
		{PauseCount: 10, RewatchCount: 6, SkipRatio: 0.05, WatchPercentage: 96},
		{PauseCount: 12, RewatchCount: 5, SkipRatio: 0.02, WatchPercentage: 98},
		{PauseCount: 9, RewatchCount: 7, SkipRatio: 0.04, WatchPercentage: 94},
		// Fast-paced: heavy skipping, short watch.
		{PauseCount: 1, RewatchCount: 0, SkipRatio: 0.7, WatchPercentage: 22},
		{PauseCount: 0, RewatchCount: 0, SkipRatio: 0.8, WatchPercentage: 18},
		{PauseCount: 2, RewatchCount: 1, SkipRatio: 0.6, WatchPercentage: 25},
		// Steady: middling everything.
		{PauseCount: 4, RewatchCount: 2, SkipRatio: 0.2, WatchPercentage: 62},
		{PauseCount: 5, RewatchCount: 2, SkipRatio: 0.25, WatchPercentage: 58},
		{PauseCount: 3, RewatchCount: 1, SkipRatio: 0.15, WatchPercentage: 65},
	}
}

func logAll(t *testing.T, c *Classifier, records []Interaction) {
	t.Helper()
	for i, in := range records {
		if err := c.Log(context.Background(), "u1", "v1", in); err != nil {
			t.Fatalf("Log record %d: %v", i, err)
		}
	}
}

func TestTrain_InsufficientData(t *testing.T) {
	c, _, _ := newTestClassifier()
	logAll(t, c, threeGroups()[:4])

	_, err := c.Train(context.Background())
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("Train with 4 records err = %v, want ErrInsufficientData", err)
	}
}

func TestTrain_FitsAndPersists(t *testing.T) {
	c, _, models := newTestClassifier()
	logAll(t, c, threeGroups())

	m, err := c.Train(context.Background())
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if len(m.Centroids) != 3 {
		t.Errorf("centroids = %d, want 3", len(m.Centroids))
	}
	if m.SampleCount != 9 {
		t.Errorf("SampleCount = %d, want 9", m.SampleCount)
	}
	if m.Version == "" {
		t.Error("model has no version")
	}
	if len(models.models) != 1 {
		t.Errorf("persisted models = %d, want 1", len(models.models))
	}
}

func TestTrain_Reproducible(t *testing.T) {
	c1, _, _ := newTestClassifier()
	c2, _, _ := newTestClassifier()
	logAll(t, c1, threeGroups())
	logAll(t, c2, threeGroups())

	m1, err := c1.Train(context.Background())
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	m2, err := c2.Train(context.Background())
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	if !reflect.DeepEqual(m1.Centroids, m2.Centroids) {
		t.Errorf("two fits on identical data produced different centroids:\n%v\n%v",
			m1.Centroids, m2.Centroids)
	}
	if !reflect.DeepEqual(m1.Labels, m2.Labels) {
		t.Errorf("two fits on identical data produced different labels: %v vs %v",
			m1.Labels, m2.Labels)
	}
}

func TestPredict_NoModelReturnsNeutral(t *testing.T) {
	c, _, _ := newTestClassifier()
	got := c.Predict([]float64{3, 1, 0.2, 60})
	if got != LabelGeneral {
		t.Errorf("Predict before training = %q, want %q", got, LabelGeneral)
	}
}

func TestPredict_MalformedVectorReturnsNeutral(t *testing.T) {
	c, _, _ := newTestClassifier()
	logAll(t, c, threeGroups())
	if _, err := c.Train(context.Background()); err != nil {
		t.Fatalf("Train: %v", err)
	}

	for _, features := range [][]float64{nil, {}, {1, 2}, {1, 2, 3, 4, 5}} {
		if got := c.Predict(features); got != LabelGeneral {
			t.Errorf("Predict(%v) = %q, want %q", features, got, LabelGeneral)
		}
	}
}

func TestPredict_ArchetypesFromProfiles(t *testing.T) {
	c, _, _ := newTestClassifier()
	logAll(t, c, threeGroups())
	if _, err := c.Train(context.Background()); err != nil {
		t.Fatalf("Train: %v", err)
	}

	tests := []struct {
		name     string
		features []float64
		want     string
	}{
		{"thorough watcher", []float64{11, 6, 0.03, 97}, LabelDetail},
		{"skimmer", []float64{1, 0, 0.75, 20}, LabelFast},
		{"middle of the road", []float64{4, 2, 0.2, 61}, LabelSteady},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Predict(tt.features); got != tt.want {
				t.Errorf("Predict = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPredictLatest(t *testing.T) {
	c, _, _ := newTestClassifier()
	logAll(t, c, threeGroups())
	if _, err := c.Train(context.Background()); err != nil {
		t.Fatalf("Train: %v", err)
	}

	// u1/v1 has records; the last one logged is a steady profile.
	if got := c.PredictLatest(context.Background(), "u1", "v1"); got != LabelSteady {
		t.Errorf("PredictLatest = %q, want %q", got, LabelSteady)
	}

	// Unknown pair falls back to the neutral label.
	if got := c.PredictLatest(context.Background(), "u2", "v9"); got != LabelGeneral {
		t.Errorf("PredictLatest for unseen pair = %q, want %q", got, LabelGeneral)
	}
}

func TestLoadLatest(t *testing.T) {
	c, interactions, models := newTestClassifier()
	logAll(t, c, threeGroups())
	if _, err := c.Train(context.Background()); err != nil {
		t.Fatalf("Train: %v", err)
	}

	// A fresh classifier over the same repos starts without a model,
	// then activates the persisted artifact.
	fresh := NewClassifier(config.Default().Behavior, interactions, models)
	if got := fresh.Predict([]float64{11, 6, 0.03, 97}); got != LabelGeneral {
		t.Fatalf("Predict before LoadLatest = %q, want %q", got, LabelGeneral)
	}
	if err := fresh.LoadLatest(context.Background()); err != nil {
		t.Fatalf("LoadLatest: %v", err)
	}
	if got := fresh.Predict([]float64{11, 6, 0.03, 97}); got != LabelDetail {
		t.Errorf("Predict after LoadLatest = %q, want %q", got, LabelDetail)
	}
}

func TestLog_RejectsOutOfRange(t *testing.T) {
	c, interactions, _ := newTestClassifier()

	bad := []Interaction{
		{PauseCount: -1},
		{SkipRatio: 1.5},
		{WatchPercentage: 120},
		{RewatchCount: -2},
	}
	for _, in := range bad {
		if err := c.Log(context.Background(), "u1", "v1", in); err == nil {
			t.Errorf("Log(%+v) succeeded, want range error", in)
		}
	}
	if len(interactions.records) != 0 {
		t.Errorf("invalid records reached the log: %d", len(interactions.records))
	}
}

func TestLogJSON(t *testing.T) {
	c, interactions, _ := newTestClassifier()
	ctx := context.Background()

	valid := []byte(`{"pause_count": 3, "rewatch_count": 1, "skip_ratio": 0.2, "watch_percentage": 75.5}`)
	if err := c.LogJSON(ctx, "u1", "v1", valid); err != nil {
		t.Fatalf("LogJSON(valid): %v", err)
	}
	if len(interactions.records) != 1 {
		t.Fatalf("records = %d, want 1", len(interactions.records))
	}
	if got := interactions.records[0]; got.PauseCount != 3 || got.WatchPercentage != 75.5 {
		t.Errorf("logged record = %+v", got)
	}

	invalid := [][]byte{
		[]byte(`not json`),
		[]byte(`{"pause_count": 3}`),
		[]byte(`{"pause_count": -1, "rewatch_count": 0, "skip_ratio": 0, "watch_percentage": 50}`),
		[]byte(`{"pause_count": 0, "rewatch_count": 0, "skip_ratio": 2, "watch_percentage": 50}`),
	}
	for _, raw := range invalid {
		if err := c.LogJSON(ctx, "u1", "v1", raw); err == nil {
			t.Errorf("LogJSON(%s) succeeded, want validation error", raw)
		}
	}
	if len(interactions.records) != 1 {
		t.Errorf("invalid payloads reached the log: %d records", len(interactions.records))
	}
}
