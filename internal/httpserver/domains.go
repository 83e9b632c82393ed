package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "nlp-task-calendar/internal/calendar/delivery/http"
	extractionHTTP "nlp-task-calendar/internal/extraction/delivery/http"
)

// setupExtractionDomain registers /process_text, /process and /process_file.
func (srv HTTPServer) setupExtractionDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := extractionHTTP.New(srv.l, srv.extractionUC, srv.outputPath)
	extractionHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Extraction domain registered (engine=%s)", srv.engineName)
	return nil
}

// setupCalendarDomain registers /calendar/*. Without a use case the routes
// are skipped.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup) error {
	if srv.calendarUC == nil {
		srv.l.Infof(ctx, "Calendar use case not configured, skipping /calendar routes")
		return nil
	}

	h := calendarHTTP.New(srv.l, srv.calendarUC)
	calendarHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Calendar domain registered")
	return nil
}
