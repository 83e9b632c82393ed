// Package app wires configuration into the extraction and calendar use cases
// shared by the API server and the CLI.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"nlp-task-calendar/config"
	"nlp-task-calendar/internal/calendar"
	calendarUC "nlp-task-calendar/internal/calendar/usecase"
	"nlp-task-calendar/internal/extraction"
	extractionUC "nlp-task-calendar/internal/extraction/usecase"
	"nlp-task-calendar/internal/extractor"
	"nlp-task-calendar/pkg/datemath"
	"nlp-task-calendar/pkg/gcalendar"
	"nlp-task-calendar/pkg/llmprovider"
	"nlp-task-calendar/pkg/log"
	"nlp-task-calendar/pkg/metrics"
	"nlp-task-calendar/pkg/nlp"
	"nlp-task-calendar/pkg/nlp/cache"
	"nlp-task-calendar/pkg/nlp/llmengine"
	"nlp-task-calendar/pkg/nlp/local"
)

// App holds the wired services.
type App struct {
	Extractor  *extractor.Extractor
	Extraction extraction.UseCase
	// Calendar is nil when Google Calendar is not configured.
	Calendar calendar.UseCase
	Metrics  *metrics.Metrics
}

// Build creates every service from cfg. A broken calendar setup only
// disables the calendar; a broken NLP engine is fatal.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	m := metrics.New()

	dates, err := datemath.NewParser(cfg.NLP.Timezone)
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine(ctx, cfg, l)
	if err != nil {
		return nil, err
	}
	engine = cache.New(engine, cfg.NLP.CacheSize, cfg.NLP.CacheTTL, m)

	ext := extractor.New(engine,
		extractor.WithDateParser(dates),
		extractor.WithLogger(l),
		extractor.WithMetrics(m),
	)
	l.Infof(ctx, "NLP engine: %s (timezone %s)", ext.EngineName(), cfg.NLP.Timezone)

	a := &App{
		Extractor: ext,
		Extraction: extractionUC.New(l, ext, m, extractionUC.Config{
			Workers:    cfg.Batch.Workers,
			InputPath:  cfg.Batch.InputFile,
			OutputPath: cfg.Batch.OutputFile,
		}),
		Metrics: m,
	}

	client, err := NewCalendarClient(ctx, cfg.GoogleCalendar)
	switch {
	case err != nil:
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
	case client == nil:
		l.Info(ctx, "Google Calendar disabled: google_calendar.credentials_path is empty")
	default:
		a.Calendar = calendarUC.New(l, client, ext, calendarUC.Config{
			CalendarID:     cfg.GoogleCalendar.CalendarID,
			AttendeeDomain: cfg.GoogleCalendar.AttendeeDomain,
			DefaultStart:   cfg.GoogleCalendar.DefaultStart,
			Duration:       cfg.GoogleCalendar.DefaultDuration,
			Location:       dates.Location(),
		})
		l.Info(ctx, "Google Calendar initialized")
	}

	return a, nil
}

// NewEngine creates the configured annotator without the cache.
func NewEngine(ctx context.Context, cfg *config.Config, l log.Logger) (nlp.Engine, error) {
	switch cfg.NLP.Engine {
	case config.EngineLLM:
		providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
		if err != nil {
			return nil, fmt.Errorf("llm providers: %w", err)
		}
		mc, err := llmprovider.ManagerConfig(&cfg.LLM)
		if err != nil {
			return nil, err
		}
		return llmengine.New(llmprovider.NewManager(providers, mc, l)), nil
	default:
		e := local.New(local.Config{GazetteerPath: cfg.NLP.GazetteerPath})
		start := time.Now()
		if err := e.Load(); err != nil {
			return nil, fmt.Errorf("local engine: %w", err)
		}
		l.Debugf(ctx, "local engine loaded in %s", time.Since(start))
		return e, nil
	}
}

// NewCalendarClient returns nil, nil when no credentials are configured.
func NewCalendarClient(ctx context.Context, cfg config.GoogleCalendarConfig) (*gcalendar.Client, error) {
	if cfg.CredentialsPath == "" {
		return nil, nil
	}
	if cfg.TokenPath == "" {
		return gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
	}

	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return gcalendar.NewClientFromCredentialsJSON(ctx, data, cfg.TokenPath)
}
