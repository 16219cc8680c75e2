package store

import (
	"context"
	"fmt"
	"time"

	"github.com/edubox/adapt/ent"
	"github.com/edubox/adapt/ent/quizattempt"
)

// AttemptData captures one quiz submission outcome for the audit log.
type AttemptData struct {
	AttemptID       string
	UserID          string
	TopicID         string
	Score           float64
	AvgTime         float64
	NewDifficulty   string
	SpeedLabel      string
	Mastery         float64
	BehaviorCluster string
	Action          string
	Message         string
	NextDifficulty  string
}

// Attempt is a stored attempt with its event metadata.
type Attempt struct {
	AttemptData
	Sequence  int64
	Timestamp time.Time
}

// AttemptRepo is the append-only quiz attempt log.
type AttemptRepo interface {
	Append(ctx context.Context, data AttemptData) error
	// RecentByUser returns the user's attempts, most recent first,
	// up to limit (0 = unlimited).
	RecentByUser(ctx context.Context, userID string, limit int) ([]Attempt, error)
}

type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizAttempt.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetUserID(data.UserID).
		SetTopicID(data.TopicID).
		SetScore(data.Score).
		SetAvgTime(data.AvgTime).
		SetNewDifficulty(data.NewDifficulty).
		SetSpeedLabel(data.SpeedLabel).
		SetMastery(data.Mastery).
		SetBehaviorCluster(data.BehaviorCluster).
		SetAction(data.Action).
		SetMessage(data.Message).
		SetNextDifficulty(data.NextDifficulty).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) RecentByUser(ctx context.Context, userID string, limit int) ([]Attempt, error) {
	q := r.client.QuizAttempt.Query().
		Where(quizattempt.UserID(userID)).
		Order(ent.Desc(quizattempt.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}

	out := make([]Attempt, len(rows))
	for i, row := range rows {
		out[i] = Attempt{
			AttemptData: AttemptData{
				AttemptID:       row.AttemptID,
				UserID:          row.UserID,
				TopicID:         row.TopicID,
				Score:           row.Score,
				AvgTime:         row.AvgTime,
				NewDifficulty:   row.NewDifficulty,
				SpeedLabel:      row.SpeedLabel,
				Mastery:         row.Mastery,
				BehaviorCluster: row.BehaviorCluster,
				Action:          row.Action,
				Message:         row.Message,
				NextDifficulty:  row.NextDifficulty,
			},
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
		}
	}
	return out, nil
}
