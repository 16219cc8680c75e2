package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubox/adapt/internal/behavior"
	"github.com/edubox/adapt/internal/bkt"
	"github.com/edubox/adapt/internal/config"
	"github.com/edubox/adapt/internal/recommend"
	"github.com/edubox/adapt/internal/speed"
	"github.com/edubox/adapt/internal/store"
)

type memMasteryRepo struct {
	states  map[string]float64
	failPut bool
}

func (r *memMasteryRepo) Get(_ context.Context, userID, conceptID string) (float64, bool, error) {
	p, ok := r.states[userID+"/"+conceptID]
	return p, ok, nil
}

func (r *memMasteryRepo) Put(_ context.Context, userID, conceptID string, pKnown float64) error {
	if r.failPut {
		return errors.New("storage unavailable")
	}
	r.states[userID+"/"+conceptID] = pKnown
	return nil
}

type memInteractionRepo struct {
	records []behavior.Interaction
}

func (r *memInteractionRepo) Append(_ context.Context, _, _ string, in behavior.Interaction) error {
	r.records = append(r.records, in)
	return nil
}

func (r *memInteractionRepo) All(_ context.Context) ([]behavior.Interaction, error) {
	return r.records, nil
}

func (r *memInteractionRepo) Latest(_ context.Context, _, _ string) (behavior.Interaction, bool, error) {
	if len(r.records) == 0 {
		return behavior.Interaction{}, false, nil
	}
	return r.records[len(r.records)-1], true, nil
}

type memModelRepo struct{ models []*behavior.Model }

func (r *memModelRepo) SaveModel(_ context.Context, m *behavior.Model) error {
	r.models = append(r.models, m)
	return nil
}

func (r *memModelRepo) LatestModel(_ context.Context) (*behavior.Model, bool, error) {
	if len(r.models) == 0 {
		return nil, false, nil
	}
	return r.models[len(r.models)-1], true, nil
}

type memAttemptRepo struct{ attempts []store.AttemptData }

func (r *memAttemptRepo) Append(_ context.Context, data store.AttemptData) error {
	r.attempts = append(r.attempts, data)
	return nil
}

func (r *memAttemptRepo) RecentByUser(_ context.Context, userID string, limit int) ([]store.Attempt, error) {
	var out []store.Attempt
	for i := len(r.attempts) - 1; i >= 0; i-- {
		if r.attempts[i].UserID != userID {
			continue
		}
		out = append(out, store.Attempt{AttemptData: r.attempts[i]})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fixture struct {
	svc      *Service
	mastery  *memMasteryRepo
	attempts *memAttemptRepo
}

func newFixture() *fixture {
	cfg := config.Default()
	mastery := &memMasteryRepo{states: make(map[string]float64)}
	attempts := &memAttemptRepo{}
	classifier := behavior.NewClassifier(cfg.Behavior, &memInteractionRepo{}, &memModelRepo{})
	svc := NewService(
		bkt.New(bkt.ParamsFromConfig(cfg.BKT), mastery),
		classifier,
		speed.NewAdapter(cfg.Speed),
		recommend.NewSynthesizer(),
		attempts,
	)
	return &fixture{svc: svc, mastery: mastery, attempts: attempts}
}

func responses(correct int, total int, timeSec float64) []Response {
	out := make([]Response, total)
	for i := range out {
		out[i] = Response{Correct: i < correct, TimeSec: timeSec}
	}
	return out
}

func TestSubmit_SteadyPass(t *testing.T) {
	f := newFixture()

	res, err := f.svc.Submit(context.Background(), SubmitInput{
		UserID:     "u1",
		TopicID:    "algebra",
		Difficulty: "medium",
		Responses:  responses(3, 4, 12),
	})
	require.NoError(t, err)

	assert.Equal(t, 75.0, res.Score)
	assert.Equal(t, 12.0, res.AvgTime)
	assert.Equal(t, speed.LabelSteady, res.Decision.SpeedLabel)
	assert.Equal(t, speed.Medium, res.Decision.NewDifficulty)

	// 75 >= 70 counts as a correct observation: one BKT step up from 0.3.
	assert.InDelta(t, 29.8/41, res.Mastery, 1e-12)
	assert.Equal(t, behavior.LabelGeneral, res.Archetype)
	assert.Equal(t, recommend.ActionProceed, res.Recommendation.Action)
	assert.Equal(t, "medium", res.Recommendation.NextDifficulty)

	require.Len(t, f.attempts.attempts, 1)
	logged := f.attempts.attempts[0]
	assert.Equal(t, res.AttemptID, logged.AttemptID)
	assert.Equal(t, "u1", logged.UserID)
	assert.Equal(t, "algebra", logged.TopicID)
	assert.Equal(t, "medium", logged.NewDifficulty)
	assert.Equal(t, res.Mastery, logged.Mastery)
	assert.NotEmpty(t, logged.Message)
}

func TestSubmit_FastAndAccurateStepsUp(t *testing.T) {
	f := newFixture()

	res, err := f.svc.Submit(context.Background(), SubmitInput{
		UserID:     "u1",
		TopicID:    "algebra",
		Difficulty: "medium",
		Responses:  responses(4, 4, 5),
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.Score)
	assert.Equal(t, speed.LabelFast, res.Decision.SpeedLabel)
	assert.Equal(t, speed.Hard, res.Decision.NewDifficulty)
}

func TestSubmit_SlowFailStepsDownAndRecommendsRevision(t *testing.T) {
	f := newFixture()

	res, err := f.svc.Submit(context.Background(), SubmitInput{
		UserID:     "u1",
		TopicID:    "algebra",
		Difficulty: "medium",
		Responses:  responses(1, 4, 30),
	})
	require.NoError(t, err)

	assert.Equal(t, 25.0, res.Score)
	assert.Equal(t, speed.LabelSlow, res.Decision.SpeedLabel)
	assert.Equal(t, speed.Easy, res.Decision.NewDifficulty)

	// 25 < 70 is an incorrect observation: one BKT step down from 0.3.
	assert.InDelta(t, 0.142/0.59, res.Mastery, 1e-12)
	assert.Equal(t, recommend.ActionRevise, res.Recommendation.Action)
	assert.Equal(t, "easy", res.Recommendation.NextDifficulty)
}

func TestSubmit_MasteryAccumulatesAcrossAttempts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var last *Result
	for i := 0; i < 10; i++ {
		var err error
		last, err = f.svc.Submit(ctx, SubmitInput{
			UserID:     "u1",
			TopicID:    "algebra",
			Difficulty: "medium",
			Responses:  responses(4, 4, 12),
		})
		require.NoError(t, err)
	}

	assert.Greater(t, last.Mastery, 0.8)
	assert.Equal(t, recommend.ActionMastery, last.Recommendation.Action)
	assert.Equal(t, "hard", last.Recommendation.NextDifficulty)
	assert.Len(t, f.attempts.attempts, 10)
}

func TestSubmit_UnknownDifficultyFailsFast(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Submit(context.Background(), SubmitInput{
		UserID:     "u1",
		TopicID:    "algebra",
		Difficulty: "extreme",
		Responses:  responses(2, 4, 12),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, speed.ErrUnknownDifficulty)
	assert.Empty(t, f.attempts.attempts)
	assert.Empty(t, f.mastery.states)
}

func TestSubmit_EmptyResponsesRejected(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Submit(context.Background(), SubmitInput{
		UserID:     "u1",
		TopicID:    "algebra",
		Difficulty: "medium",
	})
	require.Error(t, err)
	assert.Empty(t, f.attempts.attempts)
}

func TestSubmit_MasteryUpdateFailurePropagates(t *testing.T) {
	f := newFixture()
	f.mastery.failPut = true

	_, err := f.svc.Submit(context.Background(), SubmitInput{
		UserID:     "u1",
		TopicID:    "algebra",
		Difficulty: "medium",
		Responses:  responses(4, 4, 5),
	})
	require.Error(t, err)
	// No attempt is recorded with a fabricated mastery value.
	assert.Empty(t, f.attempts.attempts)
}
