package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edubox/adapt/internal/speed"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a learner's mastery and recent attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		ctx := cmd.Context()

		if topicID, _ := cmd.Flags().GetString("topic"); topicID != "" {
			p, err := e.tracker.Mastery(ctx, userID, topicID)
			if err != nil {
				return err
			}
			fmt.Printf("Mastery for %s on %s: %.4f\n", userID, topicID, p)
		}

		attempts, err := e.st.AttemptRepo().RecentByUser(ctx, userID, limit)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded.")
			return nil
		}

		fmt.Printf("Last %d attempts (most recent first):\n", len(attempts))
		for _, a := range attempts {
			fmt.Printf("  %s  %-12s score=%5.1f mastery=%.4f %-7s -> %s\n",
				a.Timestamp.Format("2006-01-02 15:04"),
				a.TopicID, a.Score, a.Mastery, a.SpeedLabel, a.Action)
		}
		fmt.Println(paceSummary(attempts[0].SpeedLabel))
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "Learner ID")
	statsCmd.Flags().String("topic", "", "Also print the mastery estimate for this topic")
	statsCmd.Flags().Int("limit", 10, "Maximum number of attempts to show")
}

// paceSummary turns the latest speed label into a one-line summary.
func paceSummary(label string) string {
	switch label {
	case speed.LabelFast:
		return "You are moving quickly through concepts with high accuracy!"
	case speed.LabelSlow:
		return "Taking your time is great for deep understanding. Keep going!"
	}
	return "You are maintaining a steady and optimal learning pace."
}
