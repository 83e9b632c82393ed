package middleware

import (
	"github.com/gin-gonic/gin"

	"nlp-task-calendar/pkg/response"
)

// Recovery turns a handler panic into a logged 500 envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: %s %s panicked: %v", c.Request.Method, c.Request.URL.Path, recovered)
		response.InternalError(c, nil)
		c.Abort()
	})
}
