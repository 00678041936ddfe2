package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gst-portal",
	Short: "GST portal web server",
	Long: `gst-portal serves the GST customer portal: a login page that authenticates
against the configured backend and a dashboard shown once signed in.

Available commands:
  serve      Start the HTTP server
  config     Print the effective configuration
  content    Print the dashboard content
  version    Print the version

Configuration is read from .env and the environment.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
