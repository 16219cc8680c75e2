// Package speed maps quiz score and response time to a difficulty decision.
package speed

import "fmt"

// Difficulty is an ordered three-level scale. Stepping clamps at the
// extremes; it never wraps.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// ErrUnknownDifficulty reports a difficulty string outside the scale.
// It signals a caller contract violation, not a transient condition.
var ErrUnknownDifficulty = fmt.Errorf("unknown difficulty level")

// ParseDifficulty converts the wire string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Harder returns the next level up, clamped at Hard.
func (d Difficulty) Harder() Difficulty {
	if d >= Hard {
		return Hard
	}
	return d + 1
}

// Easier returns the next level down, clamped at Easy.
func (d Difficulty) Easier() Difficulty {
	if d <= Easy {
		return Easy
	}
	return d - 1
}
