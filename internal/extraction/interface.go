package extraction

import (
	"context"

	"nlp-task-calendar/internal/model"
)

// UseCase defines the business logic interface for the extraction domain.
type UseCase interface {
	// Extract turns one sentence into an entity bundle.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// ExtractBatch extracts every task with a text and optionally writes the results file.
	ExtractBatch(ctx context.Context, input BatchInput) (BatchOutput, error)

	// ProcessFile reads an input file of tasks and writes the results file.
	ProcessFile(ctx context.Context, input ProcessFileInput) (ProcessFileOutput, error)
}

// Extractor is the core pipeline the use case drives.
type Extractor interface {
	Extract(ctx context.Context, text string) (model.EntityBundle, error)
}
