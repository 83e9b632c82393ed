package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the calendar endpoints under /calendar.
func RegisterRoutes(r gin.IRouter, h *handler) {
	g := r.Group("/calendar")
	g.POST("/create_event", h.CreateEvent)
	g.POST("/create_from_nlp", h.CreateFromText)
	g.GET("/events", h.ListEvents)
	g.GET("/event/:id", h.GetEvent)
	g.DELETE("/event/:id", h.DeleteEvent)
}
