package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathsprint",
	Short: "Ten-question arithmetic sprint in your terminal",
	Long:  "MathSprint quizzes you on ten random addition, subtraction, multiplication and division questions, scoring streaks along the way.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (default: $XDG_CONFIG_HOME/mathsprint/config.yaml)")
	pf.String("difficulty", "medium", "Difficulty: easy, medium or hard (env MATHSPRINT_DIFFICULTY)")
	pf.Uint64("seed", 0, "Random seed for reproducible questions; 0 picks one from the clock")
	pf.String("log-file", "", "Write JSON logs to this file (env MATHSPRINT_LOG_FILE)")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}
