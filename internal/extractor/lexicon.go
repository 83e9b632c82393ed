package extractor

import (
	"regexp"
	"strings"
)

var (
	participantTriggers = map[string]bool{
		"with": true, "and": true, "meet": true, "call": true,
		"email": true, "contact": true, "invite": true,
	}
	collectiveNouns = map[string]bool{
		"team": true, "staff": true, "group": true, "committee": true,
		"family": true, "class": true, "crew": true,
	}
	calendarWords = map[string]bool{
		"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
		"friday": true, "saturday": true, "sunday": true,
		"january": true, "february": true, "march": true, "april": true,
		"may": true, "june": true, "july": true, "august": true,
		"september": true, "october": true, "november": true, "december": true,
	}
	timeOfDayWords = []string{"am", "pm", "morning", "afternoon", "evening", "night", "noon", "midnight"}

	locationTriggers = map[string]bool{"at": true, "in": true, "near": true, "around": true, "by": true}

	connectives = map[string]bool{
		"at": true, "on": true, "with": true, "to": true, "for": true, "by": true,
		"from": true, "about": true, "as": true, "in": true, "into": true, "like": true,
		"of": true, "off": true, "onto": true, "out": true, "over": true, "past": true,
		"so": true, "than": true, "that": true, "up": true, "via": true,
	}
)

var (
	withNameRe = regexp.MustCompile(`\bwith\s+([A-Z][a-z]+)\b`)

	// numeral followed by a meridiem, used to reject names and places
	timeNumeralRe = regexp.MustCompile(`(?i)\d+\s*(?:am|pm)`)
	timeValueRe   = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:a\.m\.|p\.m\.|am\b|pm\b|hrs\b|hours?\b)`)
	numericRe     = regexp.MustCompile(`^\d+(?::\d+)?$`)
)

// words lower-cases s and splits it on whitespace.
func words(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

func anyIn(ws []string, set map[string]bool) bool {
	for _, w := range ws {
		if set[w] {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first rune and leaves the rest alone.
func capitalize(s string) string {
	for i, r := range s {
		return strings.ToUpper(string(r)) + s[i+len(string(r)):]
	}
	return s
}
