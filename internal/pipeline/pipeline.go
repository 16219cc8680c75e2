// Package pipeline runs the quiz-submission workflow: it grades a
// submission, feeds correctness and timing into the mastery tracker and
// speed adapter, classifies the learner's latest telemetry, fuses the
// three signals into a recommendation and persists the attempt.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/edubox/adapt/internal/behavior"
	"github.com/edubox/adapt/internal/bkt"
	"github.com/edubox/adapt/internal/recommend"
	"github.com/edubox/adapt/internal/speed"
	"github.com/edubox/adapt/internal/store"
)

// passThreshold is the score at or above which the attempt counts as a
// correct observation for the mastery update.
const passThreshold = 70

// Response is one graded quiz answer with its response time in seconds.
type Response struct {
	Correct bool
	TimeSec float64
}

// SubmitInput is one quiz submission.
type SubmitInput struct {
	UserID     string
	TopicID    string
	Difficulty string // current difficulty: easy, medium or hard
	Responses  []Response
}

// Result is the full outcome returned to the caller.
type Result struct {
	AttemptID      string
	Score          float64
	AvgTime        float64
	Decision       speed.Decision
	Mastery        float64
	Archetype      string
	Recommendation recommend.Recommendation
}

// Service wires the four adaptive components and the attempt log.
type Service struct {
	tracker     *bkt.Tracker
	classifier  *behavior.Classifier
	adapter     *speed.Adapter
	synthesizer *recommend.Synthesizer
	attempts    store.AttemptRepo
}

// NewService creates the workflow service.
func NewService(tracker *bkt.Tracker, classifier *behavior.Classifier, adapter *speed.Adapter, synthesizer *recommend.Synthesizer, attempts store.AttemptRepo) *Service {
	return &Service{
		tracker:     tracker,
		classifier:  classifier,
		adapter:     adapter,
		synthesizer: synthesizer,
		attempts:    attempts,
	}
}

// Submit processes one quiz submission end to end.
//
// Classification failures are absorbed into the neutral archetype and
// never block the submission. A mastery update failure propagates: the
// engine does not fabricate a mastery value.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Result, error) {
	current, err := speed.ParseDifficulty(in.Difficulty)
	if err != nil {
		return nil, err
	}
	if len(in.Responses) == 0 {
		return nil, fmt.Errorf("submission for %s/%s has no responses", in.UserID, in.TopicID)
	}

	score, avgTime := grade(in.Responses)
	decision := s.adapter.Adapt(score, avgTime, current)

	mastery, err := s.tracker.Update(ctx, in.UserID, in.TopicID, score >= passThreshold)
	if err != nil {
		return nil, fmt.Errorf("update mastery: %w", err)
	}

	archetype := s.classifier.PredictLatest(ctx, in.UserID, in.TopicID)
	rec := s.synthesizer.Recommend(score, mastery, decision.SpeedLabel, archetype)

	result := &Result{
		AttemptID:      uuid.NewString(),
		Score:          score,
		AvgTime:        avgTime,
		Decision:       decision,
		Mastery:        mastery,
		Archetype:      archetype,
		Recommendation: rec,
	}

	err = s.attempts.Append(ctx, store.AttemptData{
		AttemptID:       result.AttemptID,
		UserID:          in.UserID,
		TopicID:         in.TopicID,
		Score:           score,
		AvgTime:         avgTime,
		NewDifficulty:   decision.NewDifficulty.String(),
		SpeedLabel:      decision.SpeedLabel,
		Mastery:         mastery,
		BehaviorCluster: archetype,
		Action:          rec.Action,
		Message:         rec.Message,
		NextDifficulty:  rec.NextDifficulty,
	})
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	return result, nil
}

// grade computes the percentage score and mean response time.
func grade(responses []Response) (score, avgTime float64) {
	correct := 0
	var total float64
	for _, r := range responses {
		if r.Correct {
			correct++
		}
		total += r.TimeSec
	}
	n := float64(len(responses))
	return 100 * float64(correct) / n, total / n
}
