package usecase

import (
	"nlp-task-calendar/internal/extraction"
	"nlp-task-calendar/pkg/log"
	"nlp-task-calendar/pkg/metrics"
)

// DefaultWorkers bounds concurrent extractions in a batch.
const DefaultWorkers = 4

// Config holds batch defaults.
type Config struct {
	Workers    int
	InputPath  string
	OutputPath string
}

type implUseCase struct {
	l       log.Logger
	ext     extraction.Extractor
	metrics *metrics.Metrics
	cfg     Config
}

// New creates a new extraction UseCase instance. m may be nil.
func New(l log.Logger, ext extraction.Extractor, m *metrics.Metrics, cfg Config) extraction.UseCase {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	return &implUseCase{
		l:       l,
		ext:     ext,
		metrics: m,
		cfg:     cfg,
	}
}

func (uc *implUseCase) countItem(outcome string) {
	if uc.metrics != nil {
		uc.metrics.BatchItemsTotal.WithLabelValues(outcome).Inc()
	}
}
