package http

import (
	"errors"
	"net/http"

	"nlp-task-calendar/internal/extraction"
	pkgErrors "nlp-task-calendar/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")

// mapError translates use-case errors into HTTP errors from pkg/errors.
// File errors never echo the underlying cause.
func (h *handler) mapError(err error) error {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr
	}
	switch {
	case errors.Is(err, extraction.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, extraction.ErrEmptyText.Error())
	case errors.Is(err, extraction.ErrReadInput):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Input file not found")
	case errors.Is(err, extraction.ErrDecodeInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Input file is not a valid tasks document")
	case errors.Is(err, extraction.ErrWriteOutput):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Error writing output file")
	case errors.Is(err, extraction.ErrEngine):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Error processing text: "+err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
