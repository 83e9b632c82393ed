package http

import (
	"github.com/gin-gonic/gin"

	"nlp-task-calendar/pkg/response"
)

// CreateEvent godoc
// @Summary     Create a calendar event
// @Description Schedules an event from an entity bundle. Missing date means today, missing time means the default start.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createEventReq true "Event bundle"
// @Success     200  {object} eventResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Calendar API error"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Router      /calendar/create_event [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.createEventRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.CreateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEventResp(output.Event))
}

// CreateFromText godoc
// @Summary     Extract a task and schedule it
// @Description Runs the extraction pipeline over the text and creates an event from the result.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createFromTextReq true "Task sentence"
// @Success     200  {object} createFromTextResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Calendar API error"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Router      /calendar/create_from_nlp [POST]
func (h *handler) CreateFromText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.createFromTextRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.CreateFromText(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateFromTextResp(output))
}

// ListEvents godoc
// @Summary     List upcoming events
// @Tags        Calendar
// @Produce     json
// @Param       max_results query int false "Maximum number of events" default(10)
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /calendar/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.listEventsRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ListEvents(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEventsResp(output))
}

// GetEvent godoc
// @Summary     Get one event
// @Tags        Calendar
// @Produce     json
// @Param       id  path     string true "Event ID"
// @Success     200 {object} eventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /calendar/event/{id} [GET]
func (h *handler) GetEvent(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetEvent(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.GetEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEventResp(output.Event))
}

// DeleteEvent godoc
// @Summary     Delete one event
// @Tags        Calendar
// @Produce     json
// @Param       id  path     string true "Event ID"
// @Success     200 {object} deleteEventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /calendar/event/{id} [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.uc.DeleteEvent(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.DeleteEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteEventResp{Message: "Event deleted successfully", EventID: id})
}
