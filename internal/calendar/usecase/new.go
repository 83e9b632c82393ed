package usecase

import (
	"time"

	"nlp-task-calendar/internal/calendar"
	"nlp-task-calendar/internal/extraction"
	"nlp-task-calendar/pkg/log"
)

// DefaultMaxResults caps ListEvents when the caller gives no limit.
const DefaultMaxResults = 10

// Config carries the event defaults.
type Config struct {
	CalendarID     string
	AttendeeDomain string
	DefaultStart   string
	Duration       time.Duration
	Location       *time.Location
}

type implUseCase struct {
	l      log.Logger
	client calendar.Client
	ext    extraction.Extractor
	cfg    Config
	clock  func() time.Time
}

// New creates a new calendar UseCase instance. A nil client disables every
// call with calendar.ErrCalendarDisabled.
func New(l log.Logger, client calendar.Client, ext extraction.Extractor, cfg Config) calendar.UseCase {
	return &implUseCase{
		l:      l,
		client: client,
		ext:    ext,
		cfg:    cfg,
		clock:  time.Now,
	}
}

func (uc *implUseCase) buildOptions() calendar.BuildOptions {
	return calendar.BuildOptions{
		Now:            uc.clock(),
		Location:       uc.cfg.Location,
		CalendarID:     uc.cfg.CalendarID,
		AttendeeDomain: uc.cfg.AttendeeDomain,
		DefaultStart:   uc.cfg.DefaultStart,
		Duration:       uc.cfg.Duration,
	}
}
