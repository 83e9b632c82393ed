package extractor

import (
	"strings"

	"nlp-task-calendar/pkg/nlp"
)

// extractParticipants collects people from three sources, in order:
// PERSON entities, "with <Name>" in the raw text and names or collective
// nouns following a trigger word.
func extractParticipants(s Snapshot) Delta {
	found := append([]string(nil), s.Bundle.Participants...)
	var added []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || containsString(found, name) {
			return
		}
		found = append(found, name)
		added = append(added, name)
	}

	for _, ent := range s.Doc.EntitiesWithLabel(nlp.LabelPerson) {
		add(ent.Text)
	}
	for _, m := range withNameRe.FindAllStringSubmatch(s.Text, -1) {
		add(m[1])
	}

	places := placeEntityTexts(s.Doc)
	toks := s.Doc.Tokens
	for i := 0; i < len(toks); i++ {
		next, ok := triggerEnd(toks, i)
		if !ok {
			continue
		}
		j := next
		for j < len(toks) && skippable(toks[j]) {
			j++
		}
		if j >= len(toks) {
			continue
		}

		if collectiveNouns[toks[j].Lower()] {
			add(toks[j].Text)
			continue
		}
		if !nameLike(toks[j]) {
			continue
		}
		end := j
		for end+1 < len(toks) && nameLike(toks[end+1]) && !isTriggerAt(toks, end+1) {
			end++
		}
		candidate := s.Doc.SpanText(j, end+1)
		if rejectName(candidate, places) {
			continue
		}
		add(candidate)
	}

	return Delta{AddParticipants: added}
}

// triggerEnd reports whether a trigger starts at i and returns the index
// just past it. "talk to" is the only two-word trigger.
func triggerEnd(toks []nlp.Token, i int) (int, bool) {
	if participantTriggers[toks[i].Lower()] {
		return i + 1, true
	}
	if toks[i].Lower() == "talk" && i+1 < len(toks) && toks[i+1].Lower() == "to" {
		return i + 2, true
	}
	return 0, false
}

func isTriggerAt(toks []nlp.Token, i int) bool {
	_, ok := triggerEnd(toks, i)
	return ok
}

func skippable(t nlp.Token) bool {
	return t.IsStop || t.POS == nlp.POSPunct || t.POS == nlp.POSDet
}

func nameLike(t nlp.Token) bool {
	return t.IsCapitalized() || t.POS == nlp.POSPropn
}

func rejectName(candidate string, places map[string]bool) bool {
	lower := strings.ToLower(candidate)
	return calendarWords[lower] || places[candidate] || timeNumeralRe.MatchString(candidate)
}

func placeEntityTexts(doc *nlp.Document) map[string]bool {
	out := make(map[string]bool)
	for _, ent := range doc.EntitiesWithLabel(nlp.LabelGPE, nlp.LabelLoc, nlp.LabelFac, nlp.LabelOrg) {
		out[ent.Text] = true
	}
	return out
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
