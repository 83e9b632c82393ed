package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nlp-task-calendar/internal/extraction"
	"nlp-task-calendar/internal/model"
	"nlp-task-calendar/pkg/log"
)

type mockUseCase struct {
	err        error
	batchInput extraction.BatchInput
	fileInput  extraction.ProcessFileInput
}

func (m *mockUseCase) Extract(_ context.Context, in extraction.ExtractInput) (extraction.ExtractOutput, error) {
	if m.err != nil {
		return extraction.ExtractOutput{}, m.err
	}
	return extraction.ExtractOutput{Bundle: model.EntityBundle{Task: in.Text, Time: "12:00"}}, nil
}

func (m *mockUseCase) ExtractBatch(_ context.Context, in extraction.BatchInput) (extraction.BatchOutput, error) {
	m.batchInput = in
	if m.err != nil {
		return extraction.BatchOutput{}, m.err
	}
	var out extraction.BatchOutput
	for _, t := range in.Tasks {
		if t.Text == "" {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, extraction.BatchResult{OriginalText: t.Text, ExtractedEntities: model.EntityBundle{Task: t.Text}})
	}
	return out, nil
}

func (m *mockUseCase) ProcessFile(_ context.Context, in extraction.ProcessFileInput) (extraction.ProcessFileOutput, error) {
	m.fileInput = in
	if m.err != nil {
		return extraction.ProcessFileOutput{}, m.err
	}
	return extraction.ProcessFileOutput{OutputPath: "output.json", Processed: 2}, nil
}

func newTestRouter(uc extraction.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), uc, "output.json"))
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestProcessText(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w, env := do(t, r, http.MethodPost, "/process_text", `{"text":"Lunch at noon"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"extracted_data":{"task":"Lunch at noon","date":null,"time":"12:00","end_time":null,"participants":[],"locations":[]}}`,
		string(env.Data))

	w, _ = do(t, r, http.MethodPost, "/process_text", `{"text":""}`)
	assert.Equal(t, http.StatusOK, w.Code, "empty text is valid")

	w, env = do(t, r, http.MethodPost, "/process_text", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, extraction.ErrEmptyText.Error(), env.Message)
}

func TestProcessTextEngineError(t *testing.T) {
	r := newTestRouter(&mockUseCase{err: fmt.Errorf("%w: model missing", extraction.ErrEngine)})

	w, env := do(t, r, http.MethodPost, "/process_text", `{"text":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, env.Message, "Error processing text")
}

func TestProcess(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w, env := do(t, r, http.MethodPost, "/process", `{"tasks":[{"text":"a"},{"other":1},{"text":"b"}]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "output.json", uc.batchInput.OutputPath)

	var data processResp
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Data processed successfully", data.Message)
	require.Len(t, data.Results, 2)
	assert.Equal(t, "b", data.Results[1].OriginalText)
	assert.Equal(t, 1, data.Skipped)

	w, _ = do(t, r, http.MethodPost, "/process", `{"tasks":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessFileErrorsHideCause(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"read", fmt.Errorf("%w: open /etc/shadow: permission denied", extraction.ErrReadInput), "Input file not found"},
		{"decode", fmt.Errorf("%w: invalid character 'v' looking for beginning of value", extraction.ErrDecodeInput), "Input file is not a valid tasks document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, env := do(t, newTestRouter(&mockUseCase{err: tt.err}), http.MethodGet, "/process_file", "")
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}
}

func TestMalformedBodies(t *testing.T) {
	r := newTestRouter(&mockUseCase{})
	for _, path := range []string{"/process_text", "/process"} {
		t.Run(path, func(t *testing.T) {
			w, env := do(t, r, http.MethodPost, path, `{"text":`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, http.StatusBadRequest, env.ErrorCode)
			assert.Equal(t, errWrongBody.Message, env.Message)
		})
	}
}

func TestProcessFile(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		body     string
		err      error
		wantCode int
	}{
		{name: "get uses defaults", method: http.MethodGet, wantCode: http.StatusOK},
		{
			name: "post ignores client paths", method: http.MethodPost,
			body:     `{"input_file":"/etc/hostname","output_file":"/tmp/precious.txt"}`,
			wantCode: http.StatusOK,
		},
		{name: "missing input", method: http.MethodGet, err: extraction.ErrReadInput, wantCode: http.StatusNotFound},
		{name: "bad input", method: http.MethodGet, err: extraction.ErrDecodeInput, wantCode: http.StatusBadRequest},
		{name: "write failure", method: http.MethodGet, err: extraction.ErrWriteOutput, wantCode: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			w, env := do(t, newTestRouter(uc), tt.method, "/process_file", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, extraction.ProcessFileInput{}, uc.fileInput, "paths always come from config")
			if tt.err == nil {
				var data processFileResp
				require.NoError(t, json.Unmarshal(env.Data, &data))
				assert.Equal(t, "output.json", data.File)
			}
		})
	}
}
