package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processTextRequest(c *gin.Context) (processTextReq, error) {
	var req processTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processTextRequest: %v", err)
		return req, errWrongBody
	}
	return req, req.validate()
}

func (h *handler) processRequest(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processRequest: %v", err)
		return req, errWrongBody
	}
	return req, nil
}
