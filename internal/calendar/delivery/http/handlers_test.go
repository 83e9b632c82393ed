package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nlp-task-calendar/internal/calendar"
	"nlp-task-calendar/internal/model"
	"nlp-task-calendar/pkg/gcalendar"
	"nlp-task-calendar/pkg/log"
)

var start = time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)

type mockUseCase struct {
	err       error
	created   calendar.CreateEventInput
	listInput calendar.ListEventsInput
	deleted   string
}

func (m *mockUseCase) event(summary string) gcalendar.Event {
	return gcalendar.Event{ID: "ev-1", Summary: summary, StartTime: start, EndTime: start.Add(time.Hour), Status: "confirmed", HtmlLink: "https://calendar/ev-1"}
}

func (m *mockUseCase) CreateEvent(_ context.Context, in calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	m.created = in
	if m.err != nil {
		return calendar.CreateEventOutput{}, m.err
	}
	return calendar.CreateEventOutput{Event: m.event(in.Bundle.Task)}, nil
}

func (m *mockUseCase) CreateFromText(_ context.Context, in calendar.CreateFromTextInput) (calendar.CreateFromTextOutput, error) {
	if m.err != nil {
		return calendar.CreateFromTextOutput{}, m.err
	}
	b := model.EntityBundle{Task: "Drive", Date: "2026-10-20", Time: "10:00"}
	return calendar.CreateFromTextOutput{Bundle: b, Event: m.event("Drive")}, nil
}

func (m *mockUseCase) ListEvents(_ context.Context, in calendar.ListEventsInput) (calendar.ListEventsOutput, error) {
	m.listInput = in
	if m.err != nil {
		return calendar.ListEventsOutput{}, m.err
	}
	return calendar.ListEventsOutput{Events: []gcalendar.Event{m.event("a"), m.event("b")}}, nil
}

func (m *mockUseCase) GetEvent(_ context.Context, id string) (calendar.GetEventOutput, error) {
	if m.err != nil {
		return calendar.GetEventOutput{}, m.err
	}
	ev := m.event("x")
	ev.ID = id
	return calendar.GetEventOutput{Event: ev}, nil
}

func (m *mockUseCase) DeleteEvent(_ context.Context, id string) error {
	m.deleted = id
	return m.err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func do(t *testing.T, uc calendar.UseCase, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), uc))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestCreateEvent(t *testing.T) {
	uc := &mockUseCase{}
	w, env := do(t, uc, http.MethodPost, "/calendar/create_event",
		`{"task":"Lunch","date":"2026-10-20","time":"10:00","participants":["Bob"],"locations":[]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Bob"}, uc.created.Bundle.Participants)

	var data eventResp
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "ev-1", data.EventID)
	assert.Equal(t, "2026-10-20T10:00:00Z", data.Start)
	assert.Equal(t, "2026-10-20T11:00:00Z", data.End)

	w, env = do(t, uc, http.MethodPost, "/calendar/create_event", `{"date":"2026-10-20"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "task is required")
	assert.Equal(t, errWrongBody.Message, env.Message)
}

func TestCreateFromText(t *testing.T) {
	w, env := do(t, &mockUseCase{}, http.MethodPost, "/calendar/create_from_nlp", `{"text":"Drive tomorrow at 10am"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		ExtractedData model.EntityBundle `json:"extracted_data"`
		CreatedEvent  eventResp          `json:"created_event"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Drive", data.ExtractedData.Task)
	assert.Equal(t, "ev-1", data.CreatedEvent.EventID)
}

func TestListEvents(t *testing.T) {
	uc := &mockUseCase{}
	w, env := do(t, uc, http.MethodGet, "/calendar/events?max_results=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 5, uc.listInput.MaxResults)

	var data listEventsResp
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.Count)

	w, _ = do(t, uc, http.MethodGet, "/calendar/events?max_results=zero", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAndDeleteEvent(t *testing.T) {
	uc := &mockUseCase{}
	w, _ := do(t, uc, http.MethodGet, "/calendar/event/ev-7", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, uc, http.MethodDelete, "/calendar/event/ev-7", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ev-7", uc.deleted)
}

func TestCalendarErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"disabled", calendar.ErrCalendarDisabled, http.StatusServiceUnavailable},
		{"not found", calendar.ErrEventNotFound, http.StatusNotFound},
		{"invalid bundle", fmt.Errorf("%w: date %q", calendar.ErrInvalidBundle, "soon"), http.StatusBadRequest},
		{"api", fmt.Errorf("%w: quota", calendar.ErrCalendarAPI), http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, &mockUseCase{err: tt.err}, http.MethodGet, "/calendar/event/ev-1", "")
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantCode, env.ErrorCode)
		})
	}
}
