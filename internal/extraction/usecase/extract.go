package usecase

import (
	"context"
	"fmt"

	"nlp-task-calendar/internal/extraction"
)

// Extract runs the pipeline over one text. Empty text is not an error.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	b, err := uc.ext.Extract(ctx, input.Text)
	if err != nil {
		return extraction.ExtractOutput{}, fmt.Errorf("%w: %w", extraction.ErrEngine, err)
	}
	return extraction.ExtractOutput{Bundle: b}, nil
}
