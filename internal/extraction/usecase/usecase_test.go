package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nlp-task-calendar/internal/extraction"
	"nlp-task-calendar/internal/extraction/usecase"
	"nlp-task-calendar/internal/model"
	"nlp-task-calendar/pkg/log"
)

// stubExtractor uses the text as the task and fails on texts containing "fail".
type stubExtractor struct {
	delay time.Duration
}

func (s stubExtractor) Extract(ctx context.Context, text string) (model.EntityBundle, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if strings.Contains(text, "fail") {
		return model.EntityBundle{}, errors.New("engine down")
	}
	return model.EntityBundle{Task: strings.TrimSpace(text)}, nil
}

func newUseCase(cfg usecase.Config) extraction.UseCase {
	return usecase.New(log.NewNop(), stubExtractor{delay: time.Millisecond}, nil, cfg)
}

func TestExtract(t *testing.T) {
	uc := newUseCase(usecase.Config{})

	out, err := uc.Extract(context.Background(), extraction.ExtractInput{Text: "Lunch"})
	require.NoError(t, err)
	assert.Equal(t, "Lunch", out.Bundle.Task)

	_, err = uc.Extract(context.Background(), extraction.ExtractInput{Text: "fail"})
	assert.ErrorIs(t, err, extraction.ErrEngine)
}

func TestExtractBatchKeepsOrder(t *testing.T) {
	uc := newUseCase(usecase.Config{Workers: 3})

	tasks := []extraction.BatchTask{
		{Text: "one"}, {Text: ""}, {Text: "two"}, {Text: "fail here"}, {Text: "three"}, {Text: "four"},
	}
	out, err := uc.ExtractBatch(context.Background(), extraction.BatchInput{Tasks: tasks})
	require.NoError(t, err)

	var texts []string
	for _, r := range out.Results {
		texts = append(texts, r.OriginalText)
		assert.Equal(t, r.OriginalText, r.ExtractedEntities.Task)
	}
	assert.Equal(t, []string{"one", "two", "three", "four"}, texts)
	assert.Equal(t, 1, out.Skipped)
	assert.Equal(t, 1, out.Failed)
}

func TestExtractBatchCancelled(t *testing.T) {
	uc := newUseCase(usecase.Config{Workers: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.ExtractBatch(ctx, extraction.BatchInput{Tasks: []extraction.BatchTask{{Text: "one"}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.json")
	out := filepath.Join(dir, "output.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"tasks":[{"text":"Lunch at noon"},{"note":"no text"},{"text":"Call Bob"}]}`), 0o644))

	uc := newUseCase(usecase.Config{InputPath: in, OutputPath: out})
	res, err := uc.ProcessFile(context.Background(), extraction.ProcessFileInput{})
	require.NoError(t, err)
	assert.Equal(t, out, res.OutputPath)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.Skipped)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"results\"", "four-space indent")

	var doc struct {
		Results []struct {
			OriginalText      string         `json:"original_text"`
			ExtractedEntities map[string]any `json:"extracted_entities"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "Lunch at noon", doc.Results[0].OriginalText)
	assert.Len(t, doc.Results[0].ExtractedEntities, 6)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestProcessFileErrors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "output.json")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"tasks": [`), 0o644))
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"tasks":[{"text":"x"}]}`), 0o644))

	tests := []struct {
		name    string
		input   extraction.ProcessFileInput
		wantErr error
	}{
		{"missing input", extraction.ProcessFileInput{InputPath: filepath.Join(dir, "nope.json"), OutputPath: out}, extraction.ErrReadInput},
		{"bad json", extraction.ProcessFileInput{InputPath: bad, OutputPath: out}, extraction.ErrDecodeInput},
		{"unwritable output", extraction.ProcessFileInput{InputPath: good, OutputPath: filepath.Join(dir, "missing", "out.json")}, extraction.ErrWriteOutput},
	}
	uc := newUseCase(usecase.Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.ProcessFile(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, "previous", string(data))
		})
	}
}
