package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nlp-task-calendar/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "NLP Task Calendar API is running"
	HealthVersion = "1.0.0"
	ServiceName   = "nlp-task-calendar"
)

// index answers the bare root path.
// @Summary Root
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (srv HTTPServer) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": HealthMessage})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":   "healthy",
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
		"engine":   srv.engineName,
		"calendar": srv.calendarUC != nil,
	})
}

// readyCheck reports ready once the server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
