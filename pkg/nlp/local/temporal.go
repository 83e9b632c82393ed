package local

import (
	"regexp"
	"strings"

	"nlp-task-calendar/pkg/nlp"
)

var (
	weekdays = map[string]bool{
		"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
		"friday": true, "saturday": true, "sunday": true,
	}
	months = map[string]bool{
		"january": true, "february": true, "march": true, "april": true, "may": true, "june": true,
		"july": true, "august": true, "september": true, "october": true, "november": true, "december": true,
	}
	relativeDays = map[string]bool{"today": true, "tomorrow": true, "yesterday": true}
	periodUnits  = map[string]bool{"week": true, "month": true, "year": true, "weekend": true}
	dayParts     = map[string]bool{"morning": true, "afternoon": true, "evening": true, "night": true}
	timeWords    = map[string]bool{"noon": true, "midnight": true, "tonight": true}
	meridiems    = map[string]bool{"am": true, "pm": true, "a.m.": true, "p.m.": true}
	clockUnits   = map[string]bool{"h": true, "hr": true, "hrs": true, "hour": true, "hours": true}

	clockToken = regexp.MustCompile(`(?i)^\d{1,2}(?::\d{2})?(?:am|pm|a\.m\.|p\.m\.|h|hrs?)$`)
	clockValue = regexp.MustCompile(`^\d{1,2}(?::\d{2})?$`)
	dayNumber  = regexp.MustCompile(`^\d{1,2}(?:st|nd|rd|th)?$`)
)

// temporalSpans labels DATE and TIME runs the statistical NER does not cover.
func temporalSpans(tokens []nlp.Token) []nlp.Span {
	var spans []nlp.Span
	for i := 0; i < len(tokens); {
		if end, ok := matchTime(tokens, i); ok {
			spans = append(spans, nlp.Span{Start: i, End: end, Label: nlp.LabelTime})
			i = end
			continue
		}
		if end, ok := matchDate(tokens, i); ok {
			spans = append(spans, nlp.Span{Start: i, End: end, Label: nlp.LabelDate})
			i = end
			continue
		}
		i++
	}
	return spans
}

func matchTime(tokens []nlp.Token, i int) (int, bool) {
	w := tokens[i].Lower()
	switch {
	case clockToken.MatchString(w):
		return i + 1, true
	case tokens[i].POS == nlp.POSNum && i+1 < len(tokens) && meridiems[tokens[i+1].Lower()]:
		return i + 2, true
	case clockValue.MatchString(w) && i+1 < len(tokens) && clockUnits[tokens[i+1].Lower()]:
		return i + 2, true
	case timeWords[w]:
		return i + 1, true
	case (w == "this" || relativeDays[w]) && i+1 < len(tokens) && dayParts[tokens[i+1].Lower()]:
		return i + 2, true
	case dayParts[w]:
		return i + 1, true
	}
	return 0, false
}

func matchDate(tokens []nlp.Token, i int) (int, bool) {
	w := tokens[i].Lower()
	next := ""
	if i+1 < len(tokens) {
		next = tokens[i+1].Lower()
	}

	switch {
	case (w == "next" || w == "this" || w == "last") && (weekdays[next] || periodUnits[next]):
		return i + 2, true
	case weekdays[w] || relativeDays[w]:
		return i + 1, true
	case months[w] && tokens[i].IsCapitalized():
		end := i + 1
		if end < len(tokens) && dayNumber.MatchString(tokens[end].Text) {
			end++
		}
		return end, true
	case dayNumber.MatchString(w) && months[next] && tokens[i+1].IsCapitalized():
		return i + 2, true
	}
	return 0, false
}

// tokenTexts returns the raw token strings.
func tokenTexts(tokens []nlp.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// findRun locates words as consecutive tokens at or after from.
func findRun(tokens []string, words []string, from int) int {
	for i := from; i+len(words) <= len(tokens); i++ {
		ok := true
		for k, w := range words {
			if tokens[i+k] != w {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

func isTemporalWord(w string) bool {
	w = strings.ToLower(w)
	return weekdays[w] || months[w] || relativeDays[w] || timeWords[w]
}
