package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"nlp-task-calendar/internal/httpserver"
	"nlp-task-calendar/internal/middleware"
)

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (default: http_server.port)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API with the extraction and calendar routes.

Examples:
  taskcal serve
  taskcal serve --port 8000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger, services, err := setup(ctx)
	if err != nil {
		return err
	}

	port := cfg.HTTPServer.Port
	if servePort != 0 {
		port = servePort
	}

	srv, err := httpserver.New(logger, httpserver.Config{
		Port:        port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit: middleware.RateLimitConfig{
			Enabled:        cfg.RateLimit.Enabled,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		},
		ExtractionUC: services.Extraction,
		OutputPath:   cfg.Batch.OutputFile,
		EngineName:   services.Extractor.EngineName(),
		CalendarUC:   services.Calendar,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Starting server on port %d...\n", port)
	return srv.Run(ctx)
}
