package cmd

import (
	"os"
	"time"

	"github.com/beaconlabs/beacon/internal/webview"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP render service.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP render service",
	Long: `Run an HTTP service that renders report documents on demand.

Endpoints:
  POST /api/v1/render?category=performance  - body is a report JSON document;
                                              responds with the rendered sections
  GET  /api/v1/healthz                      - liveness probe

The server drains in-flight requests for up to 10 seconds on SIGINT/SIGTERM.

Examples:
  # Serve on the default address
  beacon serve

  # Custom listen address
  beacon serve --addr :9000

  # Render a report against the running service
  curl -X POST --data-binary @report.json localhost:8433/api/v1/render`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		api := webview.NewWebAPI(logger, webview.Config{
			Addr:            cfg.ServeAddr,
			ShutdownTimeout: 10 * time.Second,
			Render:          cfg,
		})
		return api.Start()
	},
}
