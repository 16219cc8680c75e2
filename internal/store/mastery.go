package store

import (
	"context"
	"fmt"
	"math"

	"github.com/edubox/adapt/ent"
	"github.com/edubox/adapt/ent/masterystate"
)

// MasteryRepo is keyed storage for per-(user, concept) mastery
// probabilities. Callers are expected to serialize read-modify-write
// cycles per key; the repo itself is a pass-through.
type MasteryRepo interface {
	Get(ctx context.Context, userID, conceptID string) (float64, bool, error)
	Put(ctx context.Context, userID, conceptID string, pKnown float64) error
}

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, userID, conceptID string) (float64, bool, error) {
	row, err := r.client.MasteryState.Query().
		Where(
			masterystate.UserID(userID),
			masterystate.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query mastery state: %w", err)
	}
	return row.PKnown, true, nil
}

func (r *masteryRepo) Put(ctx context.Context, userID, conceptID string, pKnown float64) error {
	// Stored rounded to 4 decimal places; finer precision is noise for a
	// mastery estimate.
	pKnown = math.Round(pKnown*10000) / 10000

	row, err := r.client.MasteryState.Query().
		Where(
			masterystate.UserID(userID),
			masterystate.ConceptID(conceptID),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query mastery state: %w", err)
		}
		_, err = r.client.MasteryState.Create().
			SetUserID(userID).
			SetConceptID(conceptID).
			SetPKnown(pKnown).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mastery state: %w", err)
		}
		return nil
	}

	_, err = r.client.MasteryState.UpdateOne(row).
		SetPKnown(pKnown).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery state: %w", err)
	}
	return nil
}
