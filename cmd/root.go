package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizbook",
	Short: "Chaptered multiple-choice quizzes in the terminal",
	Long: `quizbook runs multiple-choice quizzes from a chaptered question bank.

Without a subcommand it opens the terminal UI. The same quiz engine is
available over HTTP with "quizbook serve".`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZBOOK_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Question bank file (YAML or JSON); defaults to the built-in bank")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/quizbook/config.yaml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
