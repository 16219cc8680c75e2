package speed

import (
	"errors"
	"testing"

	"github.com/edubox/adapt/internal/config"
)

func TestAdapt(t *testing.T) {
	a := NewAdapter(config.Default().Speed)

	tests := []struct {
		name      string
		score     float64
		avgTime   float64
		current   Difficulty
		wantDiff  Difficulty
		wantLabel string
	}{
		{"fast and accurate steps up", 90, 5, Medium, Hard, LabelFast},
		{"step up clamps at hard", 95, 5, Hard, Hard, LabelFast},
		{"slow and inaccurate steps down", 30, 30, Medium, Easy, LabelSlow},
		{"step down clamps at easy", 30, 30, Easy, Easy, LabelSlow},
		{"steady pace holds", 60, 15, Medium, Medium, LabelSteady},
		{"accurate but slow holds", 90, 30, Medium, Medium, LabelSlow},
		{"fast but inaccurate holds", 30, 5, Medium, Medium, LabelFast},
		{"boundary score 80 needs fast time", 80, 15, Medium, Medium, LabelSteady},
		{"boundary time equal to fast threshold is steady", 90, 10, Medium, Medium, LabelSteady},
		{"boundary time equal to slow threshold is steady", 30, 25, Medium, Medium, LabelSteady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Adapt(tt.score, tt.avgTime, tt.current)
			if got.NewDifficulty != tt.wantDiff {
				t.Errorf("NewDifficulty = %s, want %s", got.NewDifficulty, tt.wantDiff)
			}
			if got.SpeedLabel != tt.wantLabel {
				t.Errorf("SpeedLabel = %s, want %s", got.SpeedLabel, tt.wantLabel)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"easy", "medium", "hard"} {
		d, err := ParseDifficulty(s)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", s, err)
		}
		if d.String() != s {
			t.Errorf("round trip %q -> %q", s, d.String())
		}
	}

	if _, err := ParseDifficulty("extreme"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("ParseDifficulty(extreme) err = %v, want ErrUnknownDifficulty", err)
	}
}

func TestSteppingStaysOnScale(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if up := d.Harder(); up < Easy || up > Hard {
			t.Errorf("%s.Harder() = %v, off scale", d, up)
		}
		if down := d.Easier(); down < Easy || down > Hard {
			t.Errorf("%s.Easier() = %v, off scale", d, down)
		}
	}
	if Easy.Easier() != Easy {
		t.Errorf("Easy.Easier() = %s, want easy", Easy.Easier())
	}
	if Hard.Harder() != Hard {
		t.Errorf("Hard.Harder() = %s, want hard", Hard.Harder())
	}
}
