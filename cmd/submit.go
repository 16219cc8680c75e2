package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edubox/adapt/internal/pipeline"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Run a graded quiz submission through the adaptive pipeline",
	Long: "Feeds pre-graded quiz responses through the speed adapter, the\n" +
		"mastery tracker and the behavior classifier, and prints the fused\n" +
		"recommendation. Responses are given as --results 1,0,1 (1 = correct)\n" +
		"with matching per-question times in seconds as --times 8,14,10.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		topicID, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		if userID == "" || topicID == "" {
			return fmt.Errorf("--user and --topic are required")
		}

		resultsArg, _ := cmd.Flags().GetString("results")
		timesArg, _ := cmd.Flags().GetString("times")
		responses, err := parseResponses(resultsArg, timesArg)
		if err != nil {
			return err
		}

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		res, err := e.pipeline.Submit(cmd.Context(), pipeline.SubmitInput{
			UserID:     userID,
			TopicID:    topicID,
			Difficulty: difficulty,
			Responses:  responses,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Score:          %.1f (avg %.1fs per question, %s)\n",
			res.Score, res.AvgTime, res.Decision.SpeedLabel)
		fmt.Printf("Mastery:        %.4f\n", res.Mastery)
		fmt.Printf("Archetype:      %s\n", res.Archetype)
		fmt.Printf("Difficulty:     %s -> %s\n", difficulty, res.Decision.NewDifficulty)
		fmt.Printf("Recommendation: %s (next: %s)\n", res.Recommendation.Action, res.Recommendation.NextDifficulty)
		fmt.Println(res.Recommendation.Message)
		return nil
	},
}

func init() {
	submitCmd.Flags().String("user", "", "Learner ID")
	submitCmd.Flags().String("topic", "", "Topic/concept ID")
	submitCmd.Flags().String("difficulty", "medium", "Current difficulty: easy, medium or hard")
	submitCmd.Flags().String("results", "", "Comma-separated correctness flags, e.g. 1,0,1,1")
	submitCmd.Flags().String("times", "", "Comma-separated response times in seconds, e.g. 8,14,6,10")
}

// parseResponses zips the correctness and time lists into responses.
func parseResponses(results, times string) ([]pipeline.Response, error) {
	if results == "" {
		return nil, fmt.Errorf("--results is required")
	}
	flags := strings.Split(results, ",")
	secs := strings.Split(times, ",")
	if times == "" || len(flags) != len(secs) {
		return nil, fmt.Errorf("--results has %d entries but --times has %d", len(flags), len(strings.Split(times, ",")))
	}

	out := make([]pipeline.Response, len(flags))
	for i := range flags {
		switch strings.TrimSpace(flags[i]) {
		case "1":
			out[i].Correct = true
		case "0":
			out[i].Correct = false
		default:
			return nil, fmt.Errorf("invalid correctness flag %q, want 0 or 1", flags[i])
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(secs[i]), 64)
		if err != nil || t < 0 {
			return nil, fmt.Errorf("invalid response time %q", secs[i])
		}
		out[i].TimeSec = t
	}
	return out, nil
}
