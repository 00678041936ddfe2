package cmd

import (
	"context"

	"github.com/nfrund/gstportal/internal/app"
	"github.com/nfrund/gstportal/internal/config"
	"github.com/nfrund/gstportal/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the portal and serve until interrupted.

Examples:
  gst-portal serve                  # listen on APP_ADDR (default :8080)
  gst-portal serve --addr :9000     # override the listen address`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		ctx, stop := server.SignalContext(context.Background())
		defer stop()
		return app.New(cfg).Run(ctx, serveAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (overrides APP_ADDR)")
}
