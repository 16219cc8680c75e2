// Package bkt implements Bayesian Knowledge Tracing: a per-(user, concept)
// mastery probability updated from binary correctness evidence.
package bkt

import "github.com/edubox/adapt/internal/config"

// Params holds the four BKT model parameters.
type Params struct {
	// Init is the prior probability of already knowing a concept.
	Init float64
	// Learn is the probability of transitioning from unknown to known
	// after one practice opportunity.
	Learn float64
	// Guess is the probability of answering correctly without knowing.
	Guess float64
	// Slip is the probability of answering incorrectly while knowing.
	Slip float64
}

// DefaultParams returns the calibration the engine ships with.
func DefaultParams() Params {
	return ParamsFromConfig(config.Default().BKT)
}

// ParamsFromConfig converts config values into model parameters.
func ParamsFromConfig(c config.BKTConfig) Params {
	return Params{
		Init:  c.PInit,
		Learn: c.PLearn,
		Guess: c.PGuess,
		Slip:  c.PSlip,
	}
}
