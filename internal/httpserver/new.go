package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nlp-task-calendar/internal/calendar"
	"nlp-task-calendar/internal/extraction"
	"nlp-task-calendar/internal/middleware"
	"nlp-task-calendar/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   middleware.RateLimitConfig

	// Domains
	extractionUC extraction.UseCase
	calendarUC   calendar.UseCase
	outputPath   string
	engineName   string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   middleware.RateLimitConfig

	// Extraction domain. OutputPath is where POST /process saves results.
	ExtractionUC extraction.UseCase
	OutputPath   string
	EngineName   string

	// Calendar domain, optional.
	CalendarUC calendar.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		rateLimit:    cfg.RateLimit,
		extractionUC: cfg.ExtractionUC,
		calendarUC:   cfg.CalendarUC,
		outputPath:   cfg.OutputPath,
		engineName:   cfg.EngineName,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractionUC == nil {
		return errors.New("extraction use case is required")
	}
	return nil
}
