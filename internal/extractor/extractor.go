// Package extractor turns one natural-language task sentence into an
// EntityBundle by running a fixed sequence of rules over an annotated document.
package extractor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nlp-task-calendar/internal/model"
	"nlp-task-calendar/pkg/datemath"
	"nlp-task-calendar/pkg/log"
	"nlp-task-calendar/pkg/metrics"
	"nlp-task-calendar/pkg/nlp"
)

// Extractor is stateless apart from its injected dependencies and is safe
// for concurrent use.
type Extractor struct {
	engine  nlp.Engine
	clock   func() time.Time
	dates   *datemath.Parser
	logger  log.Logger
	metrics *metrics.Metrics
	rules   []Rule
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock sets the reference moment for relative dates.
func WithClock(clock func() time.Time) Option {
	return func(e *Extractor) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithDateParser sets the parser, and so the timezone, used for dates.
func WithDateParser(p *datemath.Parser) Option {
	return func(e *Extractor) {
		if p != nil {
			e.dates = p
		}
	}
}

func WithLogger(l log.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Extractor) {
		e.metrics = m
	}
}

// WithRules replaces the rule sequence.
func WithRules(rules ...Rule) Option {
	return func(e *Extractor) {
		e.rules = rules
	}
}

// New builds an Extractor around engine. Dates default to UTC and the
// wall clock.
func New(engine nlp.Engine, opts ...Option) *Extractor {
	utc, _ := datemath.NewParser("UTC")
	e := &Extractor{
		engine: engine,
		clock:  time.Now,
		dates:  utc,
		logger: log.NewNop(),
		rules:  defaultRules(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EngineName reports the name of the underlying engine.
func (e *Extractor) EngineName() string {
	return e.engine.Name()
}

// Extract runs the pipeline over text. The only error is an engine failure,
// wrapped in ErrEngine; pattern misses leave fields empty.
func (e *Extractor) Extract(ctx context.Context, text string) (model.EntityBundle, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		e.count(metrics.OutcomeEmpty)
		return model.EntityBundle{Task: trimmed}, nil
	}

	doc, err := e.engine.Annotate(ctx, text)
	if err != nil {
		e.count(metrics.OutcomeFailure)
		e.logger.Errorf(ctx, "extractor.Extract.Annotate: %v", err)
		return model.EntityBundle{}, fmt.Errorf("%w: %v", ErrEngine, err)
	}

	snap := Snapshot{
		Doc:   doc,
		Text:  text,
		Now:   e.clock(),
		Dates: e.dates,
		Reannotate: func(fragment string) (*nlp.Document, error) {
			return e.engine.Annotate(ctx, fragment)
		},
	}

	var b model.EntityBundle
	for _, r := range e.rules {
		snap.Bundle = b.Clone()
		d := e.applyRule(ctx, r, snap)
		if d.IsEmpty() {
			continue
		}
		e.logger.Debugf(ctx, "extractor.Extract: rule %s %s", r.Name(), d)
		reduce(&b, d)
	}

	if overlap := b.Overlap(); len(overlap) > 0 {
		e.logger.Warnf(ctx, "extractor.Extract: dropping locations also listed as participants: %q", overlap)
		for _, v := range overlap {
			b.Locations = model.Remove(b.Locations, v)
		}
	}

	e.count(metrics.OutcomeSuccess)
	return b, nil
}

func (e *Extractor) count(outcome string) {
	if e.metrics != nil {
		e.metrics.ExtractionsTotal.WithLabelValues(outcome).Inc()
	}
}
