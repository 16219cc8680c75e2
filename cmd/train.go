package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edubox/adapt/internal/behavior"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit a new behavior cluster model from the interaction log",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		m, err := e.classifier.Train(cmd.Context())
		if errors.Is(err, behavior.ErrInsufficientData) {
			// A status, not a fault: keep serving the previous model.
			fmt.Println("Not enough interaction data to train yet:", err)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Trained model %s on %d records.\n", m.Version, m.SampleCount)
		for i, c := range m.Centroids {
			fmt.Printf("  %-16s pauses=%.1f rewatches=%.1f skip=%.2f watched=%.1f%%\n",
				m.Labels[i], c[0], c[1], c[2], c[3])
		}
		return nil
	},
}
