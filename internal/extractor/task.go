package extractor

import (
	"strings"

	"nlp-task-calendar/pkg/nlp"
)

var taskObjectDeps = map[nlp.Dep]bool{
	nlp.DepDObj: true,
	nlp.DepAttr: true,
	nlp.DepPObj: true,
	nlp.DepPrep: true,
}

// extractTask takes the lemma of the first content verb plus its object, or
// the whole text when there is no such verb.
func extractTask(s Snapshot) Delta {
	v, ok := firstContentVerb(s.Doc)
	if !ok {
		return setTask(strings.TrimSpace(s.Text))
	}
	task := lemmaOf(v)
	for _, c := range s.Doc.Children(v.Index) {
		if taskObjectDeps[s.Doc.Tokens[c].Dep] {
			task += " " + s.Doc.Tokens[c].Text
			break
		}
	}
	return setTask(task)
}

// cleanupTask drops words repeating their predecessor.
func cleanupTask(s Snapshot) Delta {
	if s.Bundle.Task == "" {
		return Delta{}
	}
	var kept []string
	for _, w := range strings.Fields(s.Bundle.Task) {
		if n := len(kept); n > 0 && strings.EqualFold(kept[n-1], w) {
			continue
		}
		kept = append(kept, w)
	}
	return setTask(capitalize(strings.Join(kept, " ")))
}

// scrubTask removes words that were classified as something else.
func scrubTask(s Snapshot) Delta {
	if s.Bundle.Task == "" {
		return Delta{}
	}

	classified := make(map[string]bool, len(connectives))
	for w := range connectives {
		classified[w] = true
	}
	for _, group := range [][]string{s.Bundle.Participants, s.Bundle.Locations} {
		for _, v := range group {
			for _, w := range words(v) {
				classified[w] = true
			}
		}
	}
	for _, ent := range s.Doc.EntitiesWithLabel(nlp.LabelDate, nlp.LabelTime) {
		for _, w := range words(ent.Text) {
			classified[w] = true
		}
	}

	var kept []string
	for _, w := range strings.Fields(s.Bundle.Task) {
		if !classified[strings.ToLower(w)] {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		if v, ok := firstContentVerb(s.Doc); ok {
			return setTask(capitalize(lemmaOf(v)))
		}
		return setTask("Task")
	}
	return setTask(capitalize(strings.Join(kept, " ")))
}

func firstContentVerb(doc *nlp.Document) (nlp.Token, bool) {
	for _, t := range doc.Tokens {
		if t.POS == nlp.POSVerb && !t.IsStop {
			return t, true
		}
	}
	return nlp.Token{}, false
}

func lemmaOf(t nlp.Token) string {
	if t.Lemma == "" {
		return t.Lower()
	}
	return strings.ToLower(t.Lemma)
}
