package calendar

import (
	"context"

	"nlp-task-calendar/pkg/gcalendar"
)

// UseCase defines the business logic interface for the calendar domain.
type UseCase interface {
	// CreateEvent schedules an event built from an entity bundle.
	CreateEvent(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)

	// CreateFromText extracts a bundle from text and schedules it.
	CreateFromText(ctx context.Context, input CreateFromTextInput) (CreateFromTextOutput, error)

	ListEvents(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	GetEvent(ctx context.Context, id string) (GetEventOutput, error)
	DeleteEvent(ctx context.Context, id string) error
}

// Client is the subset of the Google Calendar client the use case needs.
type Client interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	GetEvent(ctx context.Context, calendarID, eventID string) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
