package extraction

import "errors"

// Domain-specific errors for the extraction package.
var (
	ErrEmptyText   = errors.New("text is required")
	ErrReadInput   = errors.New("failed to read input file")
	ErrDecodeInput = errors.New("input file is not a valid tasks document")
	ErrWriteOutput = errors.New("failed to write output file")
	ErrEngine      = errors.New("failed to process text")
)
