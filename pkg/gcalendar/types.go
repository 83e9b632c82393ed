package gcalendar

import "time"

// DefaultCalendarID is used when a request leaves CalendarID empty.
const DefaultCalendarID = "primary"

// Reminder overrides the calendar's default reminders.
type Reminder struct {
	Method  string // "email" or "popup"
	Minutes int64
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/New_York"
	Attendees   []string
	Reminders   []Reminder
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Location    string
	Status      string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Attendees   []string
}

// ListEventsRequest is the input for listing Google Calendar events.
// A zero TimeMax leaves the window open.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
