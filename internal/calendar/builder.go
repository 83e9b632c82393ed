package calendar

import (
	"fmt"
	"strings"
	"time"

	"nlp-task-calendar/internal/model"
	"nlp-task-calendar/pkg/gcalendar"
)

// Event defaults.
const (
	DefaultStart          = "09:00"
	DefaultDuration       = time.Hour
	DefaultAttendeeDomain = "example.com"
)

// DefaultReminders are an email a day before and a popup half an hour before.
var DefaultReminders = []gcalendar.Reminder{
	{Method: "email", Minutes: 24 * 60},
	{Method: "popup", Minutes: 30},
}

// BuildOptions controls how a bundle becomes an event.
type BuildOptions struct {
	Now            time.Time
	Location       *time.Location
	CalendarID     string
	AttendeeDomain string
	DefaultStart   string
	Duration       time.Duration
}

func (o BuildOptions) withDefaults() BuildOptions {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.AttendeeDomain == "" {
		o.AttendeeDomain = DefaultAttendeeDomain
	}
	if o.DefaultStart == "" {
		o.DefaultStart = DefaultStart
	}
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	return o
}

// BuildEventRequest turns a bundle into a calendar request. A missing date is
// today and a missing time is the default start. An end time at or before the
// start rolls over to the next day; without one the event lasts Duration.
func BuildEventRequest(b model.EntityBundle, opts BuildOptions) (gcalendar.CreateEventRequest, error) {
	opts = opts.withDefaults()

	date := b.Date
	if date == "" {
		date = opts.Now.In(opts.Location).Format(model.DateLayout)
	}
	clock := b.Time
	if clock == "" {
		clock = opts.DefaultStart
	}

	start, err := time.ParseInLocation(model.DateLayout+" "+model.TimeLayout, date+" "+clock, opts.Location)
	if err != nil {
		return gcalendar.CreateEventRequest{}, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}

	end := start.Add(opts.Duration)
	if b.EndTime != "" {
		end, err = time.ParseInLocation(model.DateLayout+" "+model.TimeLayout, date+" "+b.EndTime, opts.Location)
		if err != nil {
			return gcalendar.CreateEventRequest{}, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
		}
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
	}

	description := b.Task
	if len(b.Participants) > 0 {
		description += "\n\nParticipants: " + strings.Join(b.Participants, ", ")
	}

	var attendees []string
	for _, p := range b.Participants {
		attendees = append(attendees, AttendeeEmail(p, opts.AttendeeDomain))
	}

	return gcalendar.CreateEventRequest{
		CalendarID:  opts.CalendarID,
		Summary:     b.Task,
		Description: description,
		Location:    strings.Join(b.Locations, ", "),
		StartTime:   start,
		EndTime:     end,
		Timezone:    opts.Location.String(),
		Attendees:   attendees,
		Reminders:   DefaultReminders,
	}, nil
}

// AttendeeEmail derives a placeholder address: "Ashley Smith" becomes
// "ashley.smith@<domain>".
func AttendeeEmail(name, domain string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", ".") + "@" + domain
}
