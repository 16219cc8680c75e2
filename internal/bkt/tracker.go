package bkt

import (
	"context"
	"fmt"
	"sync"
)

// StateRepo is the persistence collaborator for mastery state.
// Get returns (probability, found); an unseen pair reports found=false.
type StateRepo interface {
	Get(ctx context.Context, userID, conceptID string) (float64, bool, error)
	Put(ctx context.Context, userID, conceptID string, pKnown float64) error
}

// Tracker maintains per-(user, concept) mastery probabilities.
// Updates for the same pair are serialized with a per-key lock so
// concurrent read-modify-write cycles cannot interleave; updates for
// different pairs proceed in parallel.
type Tracker struct {
	params Params
	repo   StateRepo

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Tracker with the given parameters and state repository.
func New(params Params, repo StateRepo) *Tracker {
	return &Tracker{
		params: params,
		repo:   repo,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Mastery returns the stored probability for the pair, or the configured
// prior if the pair has never been updated. It never writes.
func (t *Tracker) Mastery(ctx context.Context, userID, conceptID string) (float64, error) {
	p, found, err := t.repo.Get(ctx, userID, conceptID)
	if err != nil {
		return 0, fmt.Errorf("get mastery %s/%s: %w", userID, conceptID, err)
	}
	if !found {
		return t.params.Init, nil
	}
	return p, nil
}

// Update applies one Bayesian step for an observed correctness outcome and
// stores the new estimate. Each call is a new evidence step; calling twice
// with the same outcome is a deliberate double-update.
func (t *Tracker) Update(ctx context.Context, userID, conceptID string, correct bool) (float64, error) {
	lock := t.keyLock(userID, conceptID)
	lock.Lock()
	defer lock.Unlock()

	prev, err := t.Mastery(ctx, userID, conceptID)
	if err != nil {
		return 0, err
	}

	next := Step(prev, correct, t.params)

	if err := t.repo.Put(ctx, userID, conceptID, next); err != nil {
		return 0, fmt.Errorf("put mastery %s/%s: %w", userID, conceptID, err)
	}
	return next, nil
}

// Step computes one BKT update without touching storage: the evidence
// posterior from the guess/slip emission model, then the learning
// transition. The result is clamped to [0,1] to absorb float drift.
func Step(p float64, correct bool, params Params) float64 {
	var ev float64
	if correct {
		num := p * (1 - params.Slip)
		den := num + (1-p)*params.Guess
		ev = posterior(num, den, p)
	} else {
		num := p * params.Slip
		den := num + (1-p)*(1-params.Guess)
		ev = posterior(num, den, p)
	}

	next := ev + (1-ev)*params.Learn
	return clamp01(next)
}

// posterior guards the degenerate case where the evidence denominator
// collapses to zero (p at a boundary combined with guess/slip at theirs).
// The prior is returned unchanged rather than dividing by zero.
func posterior(num, den, prior float64) float64 {
	if den == 0 {
		return prior
	}
	return num / den
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// keyLock returns the mutex guarding one (user, concept) pair, creating
// it on first use. Locks are never removed; the key space is bounded by
// the learner population.
func (t *Tracker) keyLock(userID, conceptID string) *sync.Mutex {
	key := userID + "\x00" + conceptID
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[key]
	if !ok {
		l = &sync.Mutex{}
		t.locks[key] = l
	}
	return l
}
