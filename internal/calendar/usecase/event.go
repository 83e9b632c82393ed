package usecase

import (
	"context"
	"errors"
	"fmt"

	"nlp-task-calendar/internal/calendar"
	"nlp-task-calendar/pkg/gcalendar"
)

// CreateEvent schedules the event described by a bundle.
func (uc *implUseCase) CreateEvent(ctx context.Context, input calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	if uc.client == nil {
		return calendar.CreateEventOutput{}, calendar.ErrCalendarDisabled
	}

	req, err := calendar.BuildEventRequest(input.Bundle, uc.buildOptions())
	if err != nil {
		return calendar.CreateEventOutput{}, err
	}

	ev, err := uc.client.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "CreateEvent: %q: %v", req.Summary, err)
		return calendar.CreateEventOutput{}, fmt.Errorf("%w: %w", calendar.ErrCalendarAPI, err)
	}

	uc.l.Infof(ctx, "CreateEvent: created %q id=%s start=%s", ev.Summary, ev.ID, req.StartTime)
	return calendar.CreateEventOutput{Event: *ev}, nil
}

// CreateFromText extracts a bundle from text and schedules it.
func (uc *implUseCase) CreateFromText(ctx context.Context, input calendar.CreateFromTextInput) (calendar.CreateFromTextOutput, error) {
	if uc.client == nil {
		return calendar.CreateFromTextOutput{}, calendar.ErrCalendarDisabled
	}

	b, err := uc.ext.Extract(ctx, input.Text)
	if err != nil {
		return calendar.CreateFromTextOutput{}, fmt.Errorf("extract: %w", err)
	}

	out, err := uc.CreateEvent(ctx, calendar.CreateEventInput{Bundle: b})
	if err != nil {
		return calendar.CreateFromTextOutput{Bundle: b}, err
	}
	return calendar.CreateFromTextOutput{Bundle: b, Event: out.Event}, nil
}

// ListEvents returns upcoming events.
func (uc *implUseCase) ListEvents(ctx context.Context, input calendar.ListEventsInput) (calendar.ListEventsOutput, error) {
	if uc.client == nil {
		return calendar.ListEventsOutput{}, calendar.ErrCalendarDisabled
	}

	max := input.MaxResults
	if max <= 0 {
		max = DefaultMaxResults
	}
	events, err := uc.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    uc.clock(),
		MaxResults: max,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ListEvents: %v", err)
		return calendar.ListEventsOutput{}, fmt.Errorf("%w: %w", calendar.ErrCalendarAPI, err)
	}
	return calendar.ListEventsOutput{Events: events}, nil
}

func (uc *implUseCase) GetEvent(ctx context.Context, id string) (calendar.GetEventOutput, error) {
	if uc.client == nil {
		return calendar.GetEventOutput{}, calendar.ErrCalendarDisabled
	}
	if id == "" {
		return calendar.GetEventOutput{}, calendar.ErrEmptyEventID
	}

	ev, err := uc.client.GetEvent(ctx, uc.cfg.CalendarID, id)
	if err != nil {
		return calendar.GetEventOutput{}, uc.mapClientError(ctx, "GetEvent", err)
	}
	return calendar.GetEventOutput{Event: *ev}, nil
}

func (uc *implUseCase) DeleteEvent(ctx context.Context, id string) error {
	if uc.client == nil {
		return calendar.ErrCalendarDisabled
	}
	if id == "" {
		return calendar.ErrEmptyEventID
	}

	if err := uc.client.DeleteEvent(ctx, uc.cfg.CalendarID, id); err != nil {
		return uc.mapClientError(ctx, "DeleteEvent", err)
	}
	uc.l.Infof(ctx, "DeleteEvent: deleted id=%s", id)
	return nil
}

func (uc *implUseCase) mapClientError(ctx context.Context, op string, err error) error {
	if errors.Is(err, gcalendar.ErrEventNotFound) {
		return calendar.ErrEventNotFound
	}
	uc.l.Errorf(ctx, "%s: %v", op, err)
	return fmt.Errorf("%w: %w", calendar.ErrCalendarAPI, err)
}
