package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edubox/adapt/internal/behavior"
	"github.com/edubox/adapt/internal/bkt"
	"github.com/edubox/adapt/internal/config"
	"github.com/edubox/adapt/internal/pipeline"
	"github.com/edubox/adapt/internal/recommend"
	"github.com/edubox/adapt/internal/speed"
	"github.com/edubox/adapt/internal/store"
)

// engine bundles the constructed components for one command invocation.
type engine struct {
	st         *store.Store
	cfg        config.Config
	tracker    *bkt.Tracker
	classifier *behavior.Classifier
	pipeline   *pipeline.Service
}

// openEngine loads config, opens the store and wires the components.
// The caller must Close the engine.
func openEngine(cmd *cobra.Command) (*engine, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	tracker := bkt.New(bkt.ParamsFromConfig(cfg.BKT), st.MasteryRepo())
	classifier := behavior.NewClassifier(cfg.Behavior, st.InteractionRepo(), st.ModelRepo())
	if err := classifier.LoadLatest(cmd.Context()); err != nil {
		st.Close()
		return nil, fmt.Errorf("load cluster model: %w", err)
	}

	svc := pipeline.NewService(
		tracker,
		classifier,
		speed.NewAdapter(cfg.Speed),
		recommend.NewSynthesizer(),
		st.AttemptRepo(),
	)

	return &engine{
		st:         st,
		cfg:        cfg,
		tracker:    tracker,
		classifier: classifier,
		pipeline:   svc,
	}, nil
}

func (e *engine) Close() error {
	return e.st.Close()
}
