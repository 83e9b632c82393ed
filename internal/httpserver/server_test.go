package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nlp-task-calendar/internal/extraction"
	"nlp-task-calendar/internal/middleware"
	"nlp-task-calendar/internal/model"
	"nlp-task-calendar/pkg/log"
)

type stubExtraction struct{}

func (stubExtraction) Extract(_ context.Context, in extraction.ExtractInput) (extraction.ExtractOutput, error) {
	return extraction.ExtractOutput{Bundle: model.EntityBundle{Task: in.Text}}, nil
}

func (stubExtraction) ExtractBatch(context.Context, extraction.BatchInput) (extraction.BatchOutput, error) {
	return extraction.BatchOutput{}, nil
}

func (stubExtraction) ProcessFile(context.Context, extraction.ProcessFileInput) (extraction.ProcessFileOutput, error) {
	return extraction.ProcessFileOutput{}, nil
}

func newTestServer(t *testing.T, rl middleware.RateLimitConfig) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:         8080,
		Mode:         gin.TestMode,
		Environment:  string(model.EnvironmentDevelopment),
		RateLimit:    rl,
		ExtractionUC: stubExtraction{},
		EngineName:   "stub",
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode})
	assert.Error(t, err, "extraction use case is required")

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode, ExtractionUC: stubExtraction{}})
	assert.Error(t, err, "port is required")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, middleware.RateLimitConfig{})

	w := serve(srv, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	var root map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &root))
	assert.Equal(t, HealthMessage, root["message"])

	for _, path := range []string{"/health", "/ready", "/live", "/metrics"} {
		assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, path, "").Code, path)
	}
	assert.NotEmpty(t, serve(srv, http.MethodGet, "/health", "").Header().Get(middleware.HeaderRequestID))
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t, middleware.RateLimitConfig{})

	w := serve(srv, http.MethodPost, "/process_text", `{"text":"hello"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"task":"hello"`)

	w = serve(srv, http.MethodGet, "/calendar/events", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "calendar routes are skipped without a use case")
}

func TestDomainRoutesRateLimited(t *testing.T) {
	srv := newTestServer(t, middleware.RateLimitConfig{Enabled: true, RequestsPerMin: 1})

	assert.Equal(t, http.StatusOK, serve(srv, http.MethodPost, "/process_text", `{"text":"a"}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(srv, http.MethodPost, "/process_text", `{"text":"b"}`).Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/health", "").Code, "system routes are not limited")
}
