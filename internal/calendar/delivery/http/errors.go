package http

import (
	"errors"
	"net/http"

	"nlp-task-calendar/internal/calendar"
	"nlp-task-calendar/internal/extraction"
	pkgErrors "nlp-task-calendar/pkg/errors"
)

var (
	errWrongBody         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errInvalidMaxResults = pkgErrors.NewHTTPError(http.StatusBadRequest, "max_results must be a positive integer")
)

func (h *handler) mapError(err error) error {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr
	}
	switch {
	case errors.Is(err, calendar.ErrCalendarDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Google Calendar integration is not configured")
	case errors.Is(err, calendar.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, calendar.ErrEventNotFound.Error())
	case errors.Is(err, calendar.ErrInvalidBundle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, calendar.ErrEmptyEventID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, calendar.ErrEmptyEventID.Error())
	case errors.Is(err, extraction.ErrEngine):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Error processing text: "+err.Error())
	case errors.Is(err, calendar.ErrCalendarAPI):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "Error creating calendar event")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
