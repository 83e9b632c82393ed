// Package main implements taskcal, the command-line front end for the
// extraction pipeline and the HTTP API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nlp-task-calendar/config"
	"nlp-task-calendar/internal/app"
	"nlp-task-calendar/pkg/log"
)

var (
	// configPath overrides the config.yaml search path
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskcal",
	Short: "Extract calendar entities from natural-language tasks",
	Long: `taskcal turns sentences like "Drive to Chicago with Ashley from 10AM to 4PM"
into a task, date, time range, participants and locations.

Run the HTTP API with "serve", a single sentence with "extract", the batch
file with "batch", or an interactive prompt with "interactive".`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (default: search ./config, ., /etc/app/)")
	rootCmd.AddCommand(serveCmd, extractCmd, batchCmd, interactiveCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// setup loads configuration, the logger and the wired services.
func setup(ctx context.Context) (*config.Config, log.Logger, *app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	services, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, services, nil
}
