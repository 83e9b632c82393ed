package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nlp-task-calendar/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

const mockCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestCalendarClientConstructors(t *testing.T) {
	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "token.json")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0644)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from installed app config without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(t.TempDir(), "token.json"))
		if err == nil || !strings.Contains(err.Error(), "gcal-auth") {
			t.Fatalf("expected missing token error, got %v", err)
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		dir := t.TempDir()
		credsPath := filepath.Join(dir, "credentials.json")
		os.WriteFile(credsPath, []byte(mockCreds), 0644)
		os.WriteFile(filepath.Join(dir, gcalendar.TokenFile), []byte(`{"access_token": "dummy", "token_type": "Bearer"}`), 0644)

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath); err != nil {
			t.Errorf("expected token next to credentials to be used: %v", err)
		}

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "non-existent.json"))
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Installed app config", func(t *testing.T) {
		cfg, err := gcalendar.InstalledAppConfig([]byte(mockCreds))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ClientID != "test-client-id.apps.googleusercontent.com" || cfg.RedirectURL != "http://localhost" {
			t.Errorf("unexpected config: %+v", cfg)
		}
		if _, err := gcalendar.InstalledAppConfig([]byte(`{"web":{}}`)); err == nil {
			t.Errorf("expected error for non-installed credentials")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &body)
		w.Write([]byte(`{
			"id": "event-123",
			"summary": "Drive",
			"location": "Chicago",
			"htmlLink": "https://calendar.google.com/event-uri",
			"status": "confirmed",
			"start": {"dateTime": "2026-10-20T10:00:00Z"},
			"end": {"dateTime": "2026-10-20T16:00:00Z"}
		}`))
	})

	start := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Drive",
		Location:  "Chicago",
		StartTime: start,
		EndTime:   start.Add(6 * time.Hour),
		Timezone:  "UTC",
		Attendees: []string{"ashley@example.com"},
		Reminders: []gcalendar.Reminder{{Method: "email", Minutes: 1440}, {Method: "popup", Minutes: 30}},
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.HtmlLink != "https://calendar.google.com/event-uri" || event.Status != "confirmed" {
		t.Errorf("unexpected event: %+v", event)
	}
	if !event.StartTime.Equal(start) {
		t.Errorf("unexpected start: %s", event.StartTime)
	}

	if body["location"] != "Chicago" {
		t.Errorf("location not sent: %v", body)
	}
	attendees, _ := body["attendees"].([]any)
	if len(attendees) != 1 {
		t.Errorf("expected one attendee, got %v", body["attendees"])
	}
	reminders, _ := body["reminders"].(map[string]any)
	if reminders["useDefault"] != false {
		t.Errorf("expected useDefault=false, got %v", reminders)
	}
	if overrides, _ := reminders["overrides"].([]any); len(overrides) != 2 {
		t.Errorf("expected two reminder overrides, got %v", reminders["overrides"])
	}
}

func TestCreateEventError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{CalendarID: "primary"})
	if err == nil {
		t.Fatalf("expected create event error")
	}
}

func TestListEvents(t *testing.T) {
	var query string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			query = r.URL.RawQuery
			w.Write([]byte(`{
				"items": [
					{"id": "event-123", "summary": "Existing Event", "start": {"date": "2024-05-01"}, "end": {"date": "2024-05-02"}},
					{"id": "event-456", "summary": "Timed", "start": {"dateTime": "2024-05-03T09:00:00Z"}, "end": {"dateTime": "2024-05-03T10:00:00Z"}}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin:    time.Now(),
		MaxResults: 10,
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].AllDay || events[1].AllDay {
		t.Errorf("unexpected all-day flags: %+v", events)
	}
	if !strings.Contains(query, "maxResults=10") || !strings.Contains(query, "singleEvents=true") || strings.Contains(query, "timeMax") {
		t.Errorf("unexpected query: %s", query)
	}

	_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "test-fail"})
	if err == nil {
		t.Fatalf("expected api error on test-fail")
	}
}

func TestGetAndDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" && r.Method == http.MethodGet:
			w.Write([]byte(`{"id": "event-123", "summary": "Lunch", "attendees": [{"email": "bob@example.com"}]}`))
		case r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" && r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case strings.HasSuffix(r.URL.Path, "/events/gone"):
			w.WriteHeader(http.StatusGone)
			w.Write([]byte(`{"error": {"code": 410, "message": "Resource has been deleted"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"code": 404, "message": "Not Found"}}`))
		}
	})
	ctx := context.Background()

	ev, err := client.GetEvent(ctx, "", "event-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Summary != "Lunch" || len(ev.Attendees) != 1 || ev.Attendees[0] != "bob@example.com" {
		t.Errorf("unexpected event: %+v", ev)
	}

	if err := client.DeleteEvent(ctx, "primary", "event-123"); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	if _, err := client.GetEvent(ctx, "", "missing"); !errors.Is(err, gcalendar.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
	if err := client.DeleteEvent(ctx, "", "gone"); !errors.Is(err, gcalendar.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound for 410, got %v", err)
	}
}
