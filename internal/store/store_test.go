package store

import (
	"context"
	"testing"
	"time"

	"github.com/edubox/adapt/internal/behavior"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMasteryRepo_GetPutRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	// Unseen pair.
	_, found, err := repo.Get(ctx, "u1", "algebra")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if found {
		t.Fatal("found mastery state for an unseen pair")
	}

	if err := repo.Put(ctx, "u1", "algebra", 0.7268292682926829); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, found, err := repo.Get(ctx, "u1", "algebra")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("mastery state not found after put")
	}
	// Stored rounded to 4 decimals.
	if got != 0.7268 {
		t.Errorf("p_known = %v, want 0.7268", got)
	}

	// Put on an existing row updates in place.
	if err := repo.Put(ctx, "u1", "algebra", 0.9); err != nil {
		t.Fatalf("put (update): %v", err)
	}
	got, _, err = repo.Get(ctx, "u1", "algebra")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != 0.9 {
		t.Errorf("p_known after update = %v, want 0.9", got)
	}

	// Other pairs are untouched.
	_, found, err = repo.Get(ctx, "u1", "geometry")
	if err != nil {
		t.Fatalf("get other pair: %v", err)
	}
	if found {
		t.Error("unrelated pair gained state")
	}
}

func TestInteractionRepo_AppendAllLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.InteractionRepo()
	ctx := context.Background()

	first := behavior.Interaction{PauseCount: 2, RewatchCount: 1, SkipRatio: 0.1, WatchPercentage: 40}
	second := behavior.Interaction{PauseCount: 5, RewatchCount: 3, SkipRatio: 0.05, WatchPercentage: 90}

	if err := repo.Append(ctx, "u1", "v1", first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, "u1", "v1", second); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, "u2", "v1", first); err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all = %d records, want 3", len(all))
	}

	latest, found, err := repo.Latest(ctx, "u1", "v1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if !found {
		t.Fatal("latest not found for logged pair")
	}
	if latest != second {
		t.Errorf("latest = %+v, want %+v", latest, second)
	}

	_, found, err = repo.Latest(ctx, "u9", "v9")
	if err != nil {
		t.Fatalf("latest (unseen): %v", err)
	}
	if found {
		t.Error("found telemetry for an unseen pair")
	}
}

func TestModelRepo_SaveLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ModelRepo()
	ctx := context.Background()

	_, found, err := repo.LatestModel(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if found {
		t.Fatal("found a model before any training")
	}

	old := &behavior.Model{
		Version:     "v-old",
		SampleCount: 6,
		Centroids:   [][]float64{{1, 1, 0.5, 50}},
		Labels:      []string{behavior.LabelSteady},
		CreatedAt:   time.Now().UTC().Add(-time.Hour).Truncate(time.Second),
	}
	replacement := &behavior.Model{
		Version:     "v-new",
		SampleCount: 12,
		Centroids:   [][]float64{{2, 2, 0.25, 75}},
		Labels:      []string{behavior.LabelSteady},
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.SaveModel(ctx, old); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveModel(ctx, replacement); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := repo.LatestModel(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if !found {
		t.Fatal("no model after save")
	}
	if got.Version != "v-new" {
		t.Errorf("latest version = %q, want v-new", got.Version)
	}
	if got.SampleCount != 12 {
		t.Errorf("SampleCount = %d, want 12", got.SampleCount)
	}
	if len(got.Centroids) != 1 || got.Centroids[0][3] != 75 {
		t.Errorf("centroids did not round-trip: %v", got.Centroids)
	}
}

func TestAttemptRepo_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i, score := range []float64{40, 60, 90} {
		err := repo.Append(ctx, AttemptData{
			AttemptID:       "a" + string(rune('1'+i)),
			UserID:          "u1",
			TopicID:         "algebra",
			Score:           score,
			AvgTime:         12,
			NewDifficulty:   "medium",
			SpeedLabel:      "Steady",
			Mastery:         0.5,
			BehaviorCluster: "General Learner",
			Action:          "Proceed to next topic",
			Message:         "Great job! You're showing steady progress.",
			NextDifficulty:  "medium",
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	recent, err := repo.RecentByUser(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d attempts, want 2", len(recent))
	}
	// Most recent first.
	if recent[0].Score != 90 || recent[1].Score != 60 {
		t.Errorf("recent scores = %v, %v, want 90, 60", recent[0].Score, recent[1].Score)
	}

	none, err := repo.RecentByUser(ctx, "u2", 0)
	if err != nil {
		t.Fatalf("recent (other user): %v", err)
	}
	if len(none) != 0 {
		t.Errorf("other user has %d attempts, want 0", len(none))
	}
}
