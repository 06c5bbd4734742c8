package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "braindash",
	Short: "Backend for the BrainDash task and mood tracker",
	Long:  "BrainDash captures natural-language tasks and mood logs, scores tasks with an AI or heuristic categorizer, and serves them over HTTP. Single Go binary.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
