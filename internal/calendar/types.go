package calendar

import (
	"nlp-task-calendar/internal/model"
	"nlp-task-calendar/pkg/gcalendar"
)

// --- UseCase Inputs ---

type CreateEventInput struct {
	Bundle model.EntityBundle
}

type CreateFromTextInput struct {
	Text string
}

type ListEventsInput struct {
	MaxResults int64
}

// --- UseCase Outputs ---

type CreateEventOutput struct {
	Event gcalendar.Event
}

type CreateFromTextOutput struct {
	Bundle model.EntityBundle
	Event  gcalendar.Event
}

type ListEventsOutput struct {
	Events []gcalendar.Event
}

type GetEventOutput struct {
	Event gcalendar.Event
}
