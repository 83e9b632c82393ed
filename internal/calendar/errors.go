package calendar

import "errors"

// Domain-specific errors for the calendar package.
var (
	ErrCalendarDisabled = errors.New("google calendar is not configured")
	ErrEventNotFound    = errors.New("calendar event not found")
	ErrInvalidBundle    = errors.New("bundle has an invalid date or time")
	ErrEmptyEventID     = errors.New("event id is required")
	ErrCalendarAPI      = errors.New("calendar request failed")
)
