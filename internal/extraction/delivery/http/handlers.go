package http

import (
	"github.com/gin-gonic/gin"

	"nlp-task-calendar/internal/extraction"
	"nlp-task-calendar/pkg/response"
)

// ProcessText godoc
// @Summary     Extract entities from one sentence
// @Description Runs the extraction pipeline over a single text and returns the entity bundle.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body processTextReq true "Text to process"
// @Success     200  {object} processTextResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /process_text [POST]
func (h *handler) ProcessText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessTextResp(output))
}

// Process godoc
// @Summary     Extract entities from a list of tasks
// @Description Processes every task that has a text and saves the results file.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Tasks to process"
// @Success     200  {object} processResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRequest(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ExtractBatch(ctx, req.toInput(h.outputPath))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractBatch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// ProcessFile godoc
// @Summary     Process the batch input file
// @Description Reads the configured tasks file and writes the configured results file.
// @Tags        Extraction
// @Produce     json
// @Success     200  {object} processFileResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Input file not found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /process_file [POST]
func (h *handler) ProcessFile(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ProcessFile(ctx, extraction.ProcessFileInput{})
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessFile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessFileResp(output))
}
