package recommend

import (
	"strings"
	"testing"
)

func TestRecommend_MasteryTiers(t *testing.T) {
	s := NewSynthesizer()

	tests := []struct {
		name       string
		mastery    float64
		wantAction string
		wantNext   string
	}{
		{"low mastery recommends revision", 0.3, ActionRevise, "easy"},
		{"high mastery recommends harder content", 0.85, ActionMastery, "hard"},
		{"middle mastery proceeds", 0.6, ActionProceed, "medium"},
		{"boundary 0.4 proceeds", 0.4, ActionProceed, "medium"},
		{"boundary 0.8 proceeds", 0.8, ActionProceed, "medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Recommend(50, tt.mastery, "Steady", "General Learner")
			if got.Action != tt.wantAction {
				t.Errorf("Action = %q, want %q", got.Action, tt.wantAction)
			}
			if got.NextDifficulty != tt.wantNext {
				t.Errorf("NextDifficulty = %q, want %q", got.NextDifficulty, tt.wantNext)
			}
		})
	}
}

func TestRecommend_ArchetypeSuffixes(t *testing.T) {
	s := NewSynthesizer()

	t.Run("detail-oriented gets thoroughness encouragement", func(t *testing.T) {
		got := s.Recommend(50, 0.3, "Steady", "Detail-Oriented")
		if got.Action != ActionRevise {
			t.Errorf("Action = %q, want %q", got.Action, ActionRevise)
		}
		if !strings.HasSuffix(got.Message, detailSuffix) {
			t.Errorf("Message %q does not end with the detail-oriented suffix", got.Message)
		}
	})

	t.Run("fast-paced gets detail caution", func(t *testing.T) {
		got := s.Recommend(90, 0.85, "Fast", "Fast-Paced")
		if got.Action != ActionMastery {
			t.Errorf("Action = %q, want %q", got.Action, ActionMastery)
		}
		if !strings.HasSuffix(got.Message, fastSuffix) {
			t.Errorf("Message %q does not end with the fast-paced suffix", got.Message)
		}
		if got.NextDifficulty != "hard" {
			t.Errorf("NextDifficulty = %q, want hard", got.NextDifficulty)
		}
	})

	t.Run("suffix appends rather than replaces", func(t *testing.T) {
		base := s.Recommend(50, 0.6, "Steady", "General Learner").Message
		got := s.Recommend(50, 0.6, "Steady", "Fast-Paced").Message
		if !strings.HasPrefix(got, base) {
			t.Errorf("suffixed message %q does not start with base %q", got, base)
		}
	})

	t.Run("other archetypes append nothing", func(t *testing.T) {
		base := s.Recommend(50, 0.6, "Steady", "")
		general := s.Recommend(50, 0.6, "Steady", "General Learner")
		steady := s.Recommend(50, 0.6, "Steady", "Steady Learner")
		if general.Message != base.Message || steady.Message != base.Message {
			t.Errorf("unexpected suffix for neutral archetypes")
		}
	})
}

func TestRecommend_SpeedLabelIsInert(t *testing.T) {
	s := NewSynthesizer()
	for _, label := range []string{"Fast", "Steady", "Slow", ""} {
		got := s.Recommend(70, 0.6, label, "General Learner")
		if got.Action != ActionProceed {
			t.Errorf("speed label %q changed the action to %q", label, got.Action)
		}
	}
}
