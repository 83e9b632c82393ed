package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the extraction endpoints onto r.
func RegisterRoutes(r gin.IRouter, h *handler) {
	r.POST("/process_text", h.ProcessText)
	r.POST("/process", h.Process)
	r.GET("/process_file", h.ProcessFile)
	r.POST("/process_file", h.ProcessFile)
}
