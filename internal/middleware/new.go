package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"nlp-task-calendar/pkg/log"
)

const (
	// DefaultRequestsPerMin is the per-client budget when none is configured.
	DefaultRequestsPerMin = 120
	// limiterCacheSize bounds how many client limiters are tracked at once.
	limiterCacheSize = 10000
	limiterTTL       = 10 * time.Minute
)

// RateLimitConfig configures the per-client limiter.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type Middleware struct {
	l        log.Logger
	rl       RateLimitConfig
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, rl RateLimitConfig) Middleware {
	if rl.RequestsPerMin <= 0 {
		rl.RequestsPerMin = DefaultRequestsPerMin
	}
	return Middleware{
		l:        l,
		rl:       rl,
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
	}
}
