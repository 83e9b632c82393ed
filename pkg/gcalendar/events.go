package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

// ErrEventNotFound is returned when the API answers 404 or 410.
var ErrEventNotFound = errors.New("calendar event not found")

func calendarID(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	for _, email := range req.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}
	if len(req.Reminders) > 0 {
		event.Reminders = &calendar.EventReminders{
			UseDefault:      false,
			ForceSendFields: []string{"UseDefault"},
		}
		for _, r := range req.Reminders {
			event.Reminders.Overrides = append(event.Reminders.Overrides, &calendar.EventReminder{
				Method:  r.Method,
				Minutes: r.Minutes,
			})
		}
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	out := toEvent(created)
	if out.StartTime.IsZero() {
		out.StartTime, out.EndTime = req.StartTime, req.EndTime
	}
	return out, nil
}

// ListEvents returns single events ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, *toEvent(item))
	}
	return events, nil
}

// GetEvent fetches one event by ID.
func (c *Client) GetEvent(ctx context.Context, calID, eventID string) (*Event, error) {
	ev, err := c.service.Events.Get(calendarID(calID), eventID).Context(ctx).Do()
	if err != nil {
		return nil, wrapNotFound("get", err)
	}
	return toEvent(ev), nil
}

// DeleteEvent removes one event by ID.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	if err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do(); err != nil {
		return wrapNotFound("delete", err)
	}
	return nil
}

func wrapNotFound(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
		return fmt.Errorf("%w: %v", ErrEventNotFound, err)
	}
	return fmt.Errorf("failed to %s calendar event: %w", op, err)
}

func toEvent(ev *calendar.Event) *Event {
	out := &Event{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Description: ev.Description,
		HtmlLink:    ev.HtmlLink,
		Location:    ev.Location,
		Status:      ev.Status,
	}
	out.StartTime, out.AllDay = parseEventTime(ev.Start)
	out.EndTime, _ = parseEventTime(ev.End)
	for _, a := range ev.Attendees {
		out.Attendees = append(out.Attendees, a.Email)
	}
	return out
}

// parseEventTime reads a timed or all-day boundary. Unparseable values
// come back as the zero time.
func parseEventTime(dt *calendar.EventDateTime) (time.Time, bool) {
	if dt == nil {
		return time.Time{}, false
	}
	if dt.DateTime != "" {
		t, _ := time.Parse(time.RFC3339, dt.DateTime)
		return t, false
	}
	if dt.Date != "" {
		t, _ := time.Parse("2006-01-02", dt.Date)
		return t, true
	}
	return time.Time{}, false
}
