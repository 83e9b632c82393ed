package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"nlp-task-calendar/internal/model"
	"nlp-task-calendar/pkg/datemath"
)

const clockExpr = `\d{1,2}(?::\d{2})?\s*(?:am|pm)`

var (
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:next|this)\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		regexp.MustCompile(`(?i)\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		regexp.MustCompile(`(?i)\btomorrow\b`),
		regexp.MustCompile(`(?i)\btoday\b`),
		regexp.MustCompile(`(?i)\bnext week\b`),
		regexp.MustCompile(`(?i)\bnext month\b`),
	}

	rangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)from\s+(` + clockExpr + `)\s+to\s+(` + clockExpr + `)`),
		regexp.MustCompile(`(?i)(` + clockExpr + `)\s+to\s+(` + clockExpr + `)`),
		regexp.MustCompile(`(?i)between\s+(` + clockExpr + `)\s+and\s+(` + clockExpr + `)`),
	}

	singleTimePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b\d{1,2}\s*(?::\s*\d{2})?\s*(?:am|pm)\b`),
		regexp.MustCompile(`(?i)\b\d{1,2}\s*(?::\s*\d{2})?\s*(?:a\.m\.|p\.m\.)`),
		regexp.MustCompile(`(?i)\b\d{1,2}\s*(?::\s*\d{2})?\s*(?:hrs|hours|hour)\b`),
		regexp.MustCompile(`(?i)\bnoon\b`),
		regexp.MustCompile(`(?i)\bmidnight\b`),
	}

	clockRe = regexp.MustCompile(`(?i)(\d{1,2})(?:\s*:\s*(\d{2}))?\s*(a\.m\.|p\.m\.|am|pm)`)
)

// extractDateTime resolves the first date phrase against s.Now, then a
// time range and, failing that, a single time of day.
func extractDateTime(s Snapshot) Delta {
	var d Delta

	for _, re := range datePatterns {
		phrase := re.FindString(s.Text)
		if phrase == "" {
			continue
		}
		t, err := s.Dates.Parse(phrase, s.Now)
		if err != nil {
			continue
		}
		d.Date = t.Format(model.DateLayout)
		break
	}

	for _, re := range rangePatterns {
		m := re.FindStringSubmatch(s.Text)
		if m == nil {
			continue
		}
		start, ok1 := clockTime(m[1])
		end, ok2 := clockTime(m[2])
		if ok1 && ok2 {
			d.Time, d.EndTime = start, end
			return d
		}
	}

	for _, re := range singleTimePatterns {
		phrase := re.FindString(s.Text)
		if phrase == "" {
			continue
		}
		if t, ok := singleTime(phrase, s.Dates); ok {
			d.Time = t
			break
		}
	}
	return d
}

func singleTime(phrase string, dates *datemath.Parser) (string, bool) {
	switch strings.ToLower(phrase) {
	case "noon":
		return "12:00", true
	case "midnight":
		return "00:00", true
	}
	if t, ok := clockTime(phrase); ok {
		return t, true
	}
	t, err := dates.ResolveClock(phrase)
	if err != nil {
		return "", false
	}
	return t, true
}

// clockTime converts the first "H[:MM] am|pm" in s to "HH:MM". Hours outside
// 1-12 or minutes above 59 are not a time.
func clockTime(s string) (string, bool) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return "", false
	}
	hour = datemath.To24Hour(hour, strings.ReplaceAll(m[3], ".", ""))
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}
