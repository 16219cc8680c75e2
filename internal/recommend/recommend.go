// Package recommend fuses mastery, speed and behavior signals into a
// single actionable recommendation.
package recommend

// Mastery tier boundaries.
const (
	revisionBelow = 0.4
	masteredAbove = 0.8
)

// Actions returned by Recommend.
const (
	ActionRevise  = "Revision Recommended"
	ActionProceed = "Proceed to next topic"
	ActionMastery = "Concept Mastered"
)

// Archetype-conditioned message suffixes.
const (
	detailSuffix = " We noticed you take your time—that's great for deep understanding!"
	fastSuffix   = " You're moving fast! Don't forget to double-check the tricky details."
)

// Recommendation is the synthesized decision for one quiz attempt.
type Recommendation struct {
	Action         string
	Message        string
	NextDifficulty string
}

// Synthesizer produces recommendations. It is stateless; the struct
// exists so the decision policy is an injected collaborator rather than
// a package-level function the caller cannot swap.
type Synthesizer struct{}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Recommend picks the base decision by mastery tier, then appends an
// archetype-conditioned suffix to the message. speedLabel is accepted for
// future policies; it does not currently alter the decision.
func (s *Synthesizer) Recommend(score, mastery float64, speedLabel, archetype string) Recommendation {
	_ = score
	_ = speedLabel

	var rec Recommendation
	switch {
	case mastery < revisionBelow:
		rec = Recommendation{
			Action:         ActionRevise,
			Message:        "You might want to review this concept again. We've unlocked some simpler resources for you.",
			NextDifficulty: "easy",
		}
	case mastery > masteredAbove:
		rec = Recommendation{
			Action:         ActionMastery,
			Message:        "Impressive mastery! Ready for more challenging content?",
			NextDifficulty: "hard",
		}
	default:
		rec = Recommendation{
			Action:         ActionProceed,
			Message:        "Great job! You're showing steady progress.",
			NextDifficulty: "medium",
		}
	}

	switch archetype {
	case "Detail-Oriented":
		rec.Message += detailSuffix
	case "Fast-Paced":
		rec.Message += fastSuffix
	}

	return rec
}
