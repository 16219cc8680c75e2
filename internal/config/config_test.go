package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.BKT.PInit != 0.3 || cfg.BKT.PLearn != 0.2 || cfg.BKT.PGuess != 0.2 || cfg.BKT.PSlip != 0.1 {
		t.Errorf("unexpected BKT defaults: %+v", cfg.BKT)
	}
	if cfg.Speed.FastThreshold != 10 || cfg.Speed.SlowThreshold != 25 {
		t.Errorf("unexpected speed defaults: %+v", cfg.Speed)
	}
	if cfg.Behavior.Clusters != 3 || cfg.Behavior.MinSamples != 5 || cfg.Behavior.Seed != 42 {
		t.Errorf("unexpected behavior defaults: %+v", cfg.Behavior)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoad_OverridesLayerOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[bkt]
p_init = 0.5

[speed]
fast_threshold = 8.0
slow_threshold = 30.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BKT.PInit != 0.5 {
		t.Errorf("p_init = %v, want 0.5", cfg.BKT.PInit)
	}
	// Untouched fields keep their defaults.
	if cfg.BKT.PGuess != 0.2 {
		t.Errorf("p_guess = %v, want default 0.2", cfg.BKT.PGuess)
	}
	if cfg.Speed.FastThreshold != 8 || cfg.Speed.SlowThreshold != 30 {
		t.Errorf("speed = %+v", cfg.Speed)
	}
	if cfg.Behavior.Clusters != 3 {
		t.Errorf("clusters = %v, want default 3", cfg.Behavior.Clusters)
	}
}

func TestLoad_RejectsDegenerateParams(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"guess at boundary", "[bkt]\np_guess = 0.0\n"},
		{"slip at boundary", "[bkt]\np_slip = 1.0\n"},
		{"prior out of range", "[bkt]\np_init = 1.5\n"},
		{"inverted thresholds", "[speed]\nfast_threshold = 30.0\nslow_threshold = 10.0\n"},
		{"min samples below clusters", "[behavior]\nmin_samples = 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load succeeded, want validation error")
			}
		})
	}
}
