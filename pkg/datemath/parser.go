package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognized is returned for phrases the parser has no rule for.
var ErrUnrecognized = errors.New("unrecognized phrase")

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	clockRe      = regexp.MustCompile(`^(\d{1,2})(?:\s*[:.]\s*(\d{2}))?\s*(a\.?m\.?|p\.?m\.?|hrs|hr|hours|hour|h)?$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to the start of the matching day.
// The baseTime is used as the reference point (usually time.Now()).
//
//	today, tomorrow, yesterday
//	in N days|weeks|months
//	next week, next month
//	next <weekday>         strictly after base, 1-7 days ahead
//	this <weekday>, <weekday>  on or after base, 0-6 days ahead
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.StartOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next month":
		return p.StartOfDay(baseTime.AddDate(0, 1, 0)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}
	if day, ok := strings.CutPrefix(relative, "next "); ok {
		return p.parseWeekday(day, baseTime, true)
	}
	if day, ok := strings.CutPrefix(relative, "this "); ok {
		return p.parseWeekday(day, baseTime, false)
	}
	if _, ok := weekdays[relative]; ok {
		return p.parseWeekday(relative, baseTime, false)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseWeekday finds the next occurrence of a weekday. With strict the
// base day itself never matches.
func (p *Parser) parseWeekday(dayName string, baseTime time.Time, strict bool) (time.Time, error) {
	target, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 || (strict && daysUntil == 0) {
		daysUntil += 7
	}

	return p.StartOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// ResolveClock converts a clock phrase to 24-hour "HH:MM". It accepts
// "3pm", "3:30 p.m.", "15:30", "15 hrs", "noon" and "midnight".
func (p *Parser) ResolveClock(phrase string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(phrase))
	switch s {
	case "noon", "midday":
		return "12:00", nil
	case "midnight":
		return "00:00", nil
	}

	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: clock %q", ErrUnrecognized, phrase)
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	suffix := strings.ReplaceAll(m[3], ".", "")
	switch suffix {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return "", fmt.Errorf("%w: hour %d with %s", ErrUnrecognized, hour, suffix)
		}
		hour = To24Hour(hour, suffix)
	case "":
		// bare "15:30" needs minutes to count as a clock time
		if m[2] == "" {
			return "", fmt.Errorf("%w: clock %q", ErrUnrecognized, phrase)
		}
	}
	if hour > 23 || minute > 59 {
		return "", fmt.Errorf("%w: clock %q out of range", ErrUnrecognized, phrase)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// To24Hour converts a 12-hour clock hour: 12am is 0, 12pm stays 12 and any
// other pm hour adds 12. meridiem is "am" or "pm" in any case, dots allowed.
func To24Hour(hour int, meridiem string) int {
	pm := strings.HasPrefix(strings.ToLower(meridiem), "p")
	switch {
	case hour == 12 && !pm:
		return 0
	case pm && hour < 12:
		return hour + 12
	}
	return hour
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
