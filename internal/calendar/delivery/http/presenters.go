package http

import (
	"time"

	"nlp-task-calendar/internal/calendar"
	"nlp-task-calendar/internal/model"
	"nlp-task-calendar/pkg/gcalendar"
)

// --- Request DTOs ---

type createEventReq struct {
	Task         string   `json:"task" binding:"required"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	EndTime      string   `json:"end_time"`
	Participants []string `json:"participants"`
	Locations    []string `json:"locations"`
}

func (r createEventReq) toInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{Bundle: model.EntityBundle{
		Task:         r.Task,
		Date:         r.Date,
		Time:         r.Time,
		EndTime:      r.EndTime,
		Participants: r.Participants,
		Locations:    r.Locations,
	}}
}

type createFromTextReq struct {
	Text string `json:"text" binding:"required"`
}

func (r createFromTextReq) toInput() calendar.CreateFromTextInput {
	return calendar.CreateFromTextInput{Text: r.Text}
}

// --- Response DTOs ---

type eventResp struct {
	EventID  string `json:"event_id"`
	HtmlLink string `json:"html_link"`
	Summary  string `json:"summary"`
	Location string `json:"location,omitempty"`
	Start    string `json:"start"`
	End      string `json:"end"`
	AllDay   bool   `json:"all_day"`
	Status   string `json:"status"`
}

func (h *handler) newEventResp(ev gcalendar.Event) eventResp {
	return eventResp{
		EventID:  ev.ID,
		HtmlLink: ev.HtmlLink,
		Summary:  ev.Summary,
		Location: ev.Location,
		Start:    formatEventTime(ev.StartTime, ev.AllDay),
		End:      formatEventTime(ev.EndTime, ev.AllDay),
		AllDay:   ev.AllDay,
		Status:   ev.Status,
	}
}

func formatEventTime(t time.Time, allDay bool) string {
	if t.IsZero() {
		return ""
	}
	if allDay {
		return t.Format(model.DateLayout)
	}
	return t.Format(time.RFC3339)
}

type createFromTextResp struct {
	ExtractedData model.EntityBundle `json:"extracted_data"`
	CreatedEvent  eventResp          `json:"created_event"`
}

func (h *handler) newCreateFromTextResp(out calendar.CreateFromTextOutput) createFromTextResp {
	return createFromTextResp{
		ExtractedData: out.Bundle,
		CreatedEvent:  h.newEventResp(out.Event),
	}
}

type listEventsResp struct {
	Events []eventResp `json:"events"`
	Count  int         `json:"count"`
}

func (h *handler) newListEventsResp(out calendar.ListEventsOutput) listEventsResp {
	events := make([]eventResp, 0, len(out.Events))
	for _, ev := range out.Events {
		events = append(events, h.newEventResp(ev))
	}
	return listEventsResp{Events: events, Count: len(events)}
}

type deleteEventResp struct {
	Message string `json:"message"`
	EventID string `json:"event_id"`
}
