// Package cache wraps an nlp.Engine with a bounded, expiring LRU of
// annotated documents keyed by the exact input text.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"nlp-task-calendar/pkg/metrics"
	"nlp-task-calendar/pkg/nlp"
)

const (
	DefaultSize = 1024
	DefaultTTL  = 30 * time.Minute
)

// Engine is a caching nlp.Engine. Errors are never cached.
type Engine struct {
	next    nlp.Engine
	lru     *expirable.LRU[string, *nlp.Document]
	metrics *metrics.Metrics
}

// New wraps next. size <= 0 and ttl <= 0 fall back to the defaults. m may be nil.
func New(next nlp.Engine, size int, ttl time.Duration, m *metrics.Metrics) *Engine {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Engine{
		next:    next,
		lru:     expirable.NewLRU[string, *nlp.Document](size, nil, ttl),
		metrics: m,
	}
}

// Name reports the wrapped engine's name.
func (e *Engine) Name() string {
	return e.next.Name()
}

// Annotate returns a cached document for text or asks the wrapped engine.
// Documents are shared between callers and must not be modified.
func (e *Engine) Annotate(ctx context.Context, text string) (*nlp.Document, error) {
	if doc, ok := e.lru.Get(text); ok {
		if e.metrics != nil {
			e.metrics.CacheHitsTotal.Inc()
		}
		return doc, nil
	}
	if e.metrics != nil {
		e.metrics.CacheMissesTotal.Inc()
	}

	doc, err := e.next.Annotate(ctx, text)
	if err != nil {
		return nil, err
	}
	e.lru.Add(text, doc)
	return doc, nil
}

// Len returns the number of cached documents.
func (e *Engine) Len() int {
	return e.lru.Len()
}

// Purge empties the cache.
func (e *Engine) Purge() {
	e.lru.Purge()
}
