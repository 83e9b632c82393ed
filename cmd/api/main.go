package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nlp-task-calendar/config"
	_ "nlp-task-calendar/docs" // Swagger docs
	"nlp-task-calendar/internal/app"
	"nlp-task-calendar/internal/httpserver"
	"nlp-task-calendar/internal/middleware"
	"nlp-task-calendar/pkg/log"
)

// @title       NLP Task Calendar API
// @description Extracts task, date, time, participants and locations from natural-language task sentences and schedules them in Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting NLP Task Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Services
	services, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize services: ", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
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
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
