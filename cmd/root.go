package cmd

import (
	"github.com/spf13/cobra"

	"github.com/edubox/adapt/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "adapt",
	Short: "Adaptive learning inference engine",
	Long: "Adapt — Bayesian mastery tracking, behavior clustering and\n" +
		"speed-based difficulty adaptation for quiz-driven learning.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADAPT_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (default: XDG config dir)")

	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ADAPT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
