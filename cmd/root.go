package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rocketd",
	Short: "🚀 rocketd - static JSON route server",
	Long: `rocketd - Serve a fixed table of routes, each answering with a constant
JSON string.

Core Commands:
  serve            Start the HTTP server
  routes           List the registered routes
  config           Show, validate or locate the configuration
  init             Create rocketd.yaml with an interactive wizard
  logs             View the request activity stream`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
