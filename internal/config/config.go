// Package config loads engine settings from a TOML file and resolves
// data paths.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all tunable parameters for the adaptive engine.
type Config struct {
	BKT      BKTConfig      `toml:"bkt"`
	Speed    SpeedConfig    `toml:"speed"`
	Behavior BehaviorConfig `toml:"behavior"`
}

// BKTConfig holds the four Bayesian Knowledge Tracing parameters.
type BKTConfig struct {
	PInit  float64 `toml:"p_init"`
	PLearn float64 `toml:"p_learn"`
	PGuess float64 `toml:"p_guess"`
	PSlip  float64 `toml:"p_slip"`
}

// SpeedConfig holds response-time thresholds in seconds.
type SpeedConfig struct {
	FastThreshold float64 `toml:"fast_threshold"`
	SlowThreshold float64 `toml:"slow_threshold"`
}

// BehaviorConfig holds clustering settings.
type BehaviorConfig struct {
	Clusters   int   `toml:"clusters"`
	MinSamples int   `toml:"min_samples"`
	Seed       int64 `toml:"seed"`
}

// Default returns the engine defaults. These match the values the
// components were calibrated with; a config file overrides them per field.
func Default() Config {
	return Config{
		BKT: BKTConfig{
			PInit:  0.3,
			PLearn: 0.2,
			PGuess: 0.2,
			PSlip:  0.1,
		},
		Speed: SpeedConfig{
			FastThreshold: 10,
			SlowThreshold: 25,
		},
		Behavior: BehaviorConfig{
			Clusters:   3,
			MinSamples: 5,
			Seed:       42,
		},
	}
}

// Load reads a TOML config from path, layered over Default.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects parameter values that would break the update math.
func (c Config) Validate() error {
	for _, p := range []struct {
		name string
		val  float64
	}{
		{"bkt.p_init", c.BKT.PInit},
		{"bkt.p_learn", c.BKT.PLearn},
	} {
		if p.val < 0 || p.val > 1 {
			return fmt.Errorf("config: %s = %v out of [0,1]", p.name, p.val)
		}
	}
	// Guess and slip at exactly 0 or 1 make the evidence update degenerate.
	for _, p := range []struct {
		name string
		val  float64
	}{
		{"bkt.p_guess", c.BKT.PGuess},
		{"bkt.p_slip", c.BKT.PSlip},
	} {
		if p.val <= 0 || p.val >= 1 {
			return fmt.Errorf("config: %s = %v out of (0,1)", p.name, p.val)
		}
	}
	if c.Speed.FastThreshold < 0 || c.Speed.SlowThreshold < c.Speed.FastThreshold {
		return fmt.Errorf("config: speed thresholds fast=%v slow=%v invalid",
			c.Speed.FastThreshold, c.Speed.SlowThreshold)
	}
	if c.Behavior.Clusters < 1 {
		return fmt.Errorf("config: behavior.clusters = %d, need >= 1", c.Behavior.Clusters)
	}
	if c.Behavior.MinSamples < c.Behavior.Clusters {
		return fmt.Errorf("config: behavior.min_samples = %d below cluster count %d",
			c.Behavior.MinSamples, c.Behavior.Clusters)
	}
	return nil
}
