package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"nlp-task-calendar/internal/extraction"
)

// ProcessFile reads a tasks document and writes the results document.
// Empty paths fall back to the configured defaults. The output file is
// replaced only once every item has been processed.
func (uc *implUseCase) ProcessFile(ctx context.Context, input extraction.ProcessFileInput) (extraction.ProcessFileOutput, error) {
	inPath := input.InputPath
	if inPath == "" {
		inPath = uc.cfg.InputPath
	}
	outPath := input.OutputPath
	if outPath == "" {
		outPath = uc.cfg.OutputPath
	}

	doc, err := readTasks(inPath)
	if err != nil {
		uc.l.Errorf(ctx, "ProcessFile: %v", err)
		return extraction.ProcessFileOutput{}, err
	}

	out, err := uc.ExtractBatch(ctx, extraction.BatchInput{Tasks: doc.Tasks, OutputPath: outPath})
	if err != nil {
		return extraction.ProcessFileOutput{}, err
	}

	return extraction.ProcessFileOutput{
		OutputPath: outPath,
		Processed:  len(out.Results),
		Skipped:    out.Skipped,
		Failed:     out.Failed,
	}, nil
}

func readTasks(path string) (extraction.TasksDocument, error) {
	var doc extraction.TasksDocument
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("%w: %w", extraction.ErrReadInput, err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("%w: %w", extraction.ErrDecodeInput, err)
	}
	return doc, nil
}

// writeResults writes the results document next to path and renames it
// into place.
func writeResults(path string, results []extraction.BatchResult) error {
	if results == nil {
		results = []extraction.BatchResult{}
	}
	data, err := json.MarshalIndent(extraction.ResultsDocument{Results: results}, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %w", extraction.ErrWriteOutput, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", extraction.ErrWriteOutput, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", extraction.ErrWriteOutput, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", extraction.ErrWriteOutput, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", extraction.ErrWriteOutput, err)
	}
	return nil
}
