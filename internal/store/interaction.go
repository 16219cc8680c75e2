package store

import (
	"context"
	"fmt"

	"github.com/edubox/adapt/ent"
	"github.com/edubox/adapt/ent/interactionevent"

	"github.com/edubox/adapt/internal/behavior"
)

// InteractionRepo is the append-only interaction log. It satisfies
// behavior.InteractionRepo.
type InteractionRepo = behavior.InteractionRepo

type interactionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *interactionRepo) Append(ctx context.Context, userID, videoID string, in behavior.Interaction) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InteractionEvent.Create().
		SetSequence(seqNum).
		SetUserID(userID).
		SetVideoID(videoID).
		SetPauseCount(in.PauseCount).
		SetRewatchCount(in.RewatchCount).
		SetSkipRatio(in.SkipRatio).
		SetWatchPercentage(in.WatchPercentage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save interaction event: %w", err)
	}
	return nil
}

func (r *interactionRepo) All(ctx context.Context) ([]behavior.Interaction, error) {
	rows, err := r.client.InteractionEvent.Query().
		Order(ent.Asc(interactionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query interaction events: %w", err)
	}

	out := make([]behavior.Interaction, len(rows))
	for i, row := range rows {
		out[i] = behavior.Interaction{
			PauseCount:      row.PauseCount,
			RewatchCount:    row.RewatchCount,
			SkipRatio:       row.SkipRatio,
			WatchPercentage: row.WatchPercentage,
		}
	}
	return out, nil
}

func (r *interactionRepo) Latest(ctx context.Context, userID, videoID string) (behavior.Interaction, bool, error) {
	row, err := r.client.InteractionEvent.Query().
		Where(
			interactionevent.UserID(userID),
			interactionevent.VideoID(videoID),
		).
		Order(ent.Desc(interactionevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return behavior.Interaction{}, false, nil
		}
		return behavior.Interaction{}, false, fmt.Errorf("query latest interaction: %w", err)
	}
	return behavior.Interaction{
		PauseCount:      row.PauseCount,
		RewatchCount:    row.RewatchCount,
		SkipRatio:       row.SkipRatio,
		WatchPercentage: row.WatchPercentage,
	}, true, nil
}
