package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"nlp-task-calendar/internal/calendar"
)

func (h *handler) createEventRequest(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "bind: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) createFromTextRequest(c *gin.Context) (createFromTextReq, error) {
	var req createFromTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "bind: %v", err)
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) listEventsRequest(c *gin.Context) (calendar.ListEventsInput, error) {
	raw := c.Query("max_results")
	if raw == "" {
		return calendar.ListEventsInput{}, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return calendar.ListEventsInput{}, errInvalidMaxResults
	}
	return calendar.ListEventsInput{MaxResults: n}, nil
}
