package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edubox/adapt/internal/behavior"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Append a video interaction record to the telemetry log",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		videoID, _ := cmd.Flags().GetString("video")
		if userID == "" || videoID == "" {
			return fmt.Errorf("--user and --video are required")
		}

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if raw, _ := cmd.Flags().GetString("json"); raw != "" {
			if err := e.classifier.LogJSON(cmd.Context(), userID, videoID, []byte(raw)); err != nil {
				return err
			}
			fmt.Println("Interaction logged.")
			return nil
		}

		pauses, _ := cmd.Flags().GetInt("pauses")
		rewatches, _ := cmd.Flags().GetInt("rewatches")
		skip, _ := cmd.Flags().GetFloat64("skip")
		watched, _ := cmd.Flags().GetFloat64("watched")

		in := behavior.Interaction{
			PauseCount:      pauses,
			RewatchCount:    rewatches,
			SkipRatio:       skip,
			WatchPercentage: watched,
		}
		if err := e.classifier.Log(cmd.Context(), userID, videoID, in); err != nil {
			return err
		}
		fmt.Println("Interaction logged.")
		return nil
	},
}

func init() {
	trackCmd.Flags().String("user", "", "Learner ID")
	trackCmd.Flags().String("video", "", "Video ID")
	trackCmd.Flags().Int("pauses", 0, "Pause count")
	trackCmd.Flags().Int("rewatches", 0, "Rewatch count")
	trackCmd.Flags().Float64("skip", 0, "Skip ratio in [0,1]")
	trackCmd.Flags().Float64("watched", 0, "Watch percentage in [0,100]")
	trackCmd.Flags().String("json", "", "Raw telemetry JSON (validated against the schema)")
}
