package http

import (
	"nlp-task-calendar/internal/extraction"
	"nlp-task-calendar/pkg/log"
)

type handler struct {
	l          log.Logger
	uc         extraction.UseCase
	outputPath string
}

// New creates a new HTTP handler for the extraction domain. outputPath is
// where POST /process saves its results; empty disables saving.
func New(l log.Logger, uc extraction.UseCase, outputPath string) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		outputPath: outputPath,
	}
}
