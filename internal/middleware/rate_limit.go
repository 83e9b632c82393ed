package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"nlp-task-calendar/pkg/response"
)

// RateLimit applies a token bucket per client IP. Disabled config makes it a
// pass-through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.rl.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	every := rate.Every(time.Minute / time.Duration(m.rl.RequestsPerMin))
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter, ok := m.limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(every, m.rl.RequestsPerMin)
			m.limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s over %d req/min", ip, m.rl.RequestsPerMin)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
