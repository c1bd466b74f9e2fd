package cmd

import (
	"github.com/spf13/cobra"
)

var cfg = &Config{}

var rootCmd = &cobra.Command{
	Use:   "mindgym",
	Short: "Daily brain trainer",
	Long:  "MindGym serves short math, logic and memory challenges in the browser or the terminal.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	registerPersistentFlags(rootCmd)
	registerServeFlags(rootCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(riddlesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SilenceUsage = true
}
