package extractor

import (
	"strings"

	"nlp-task-calendar/pkg/nlp"
)

// extractLocations looks for places after a locative preposition, then
// falls back to place and organisation entities.
func extractLocations(s Snapshot) Delta {
	withs := withSpans(s.Doc)
	excluded := exclusionWords(s, withs)
	found := append([]string(nil), s.Bundle.Locations...)

	var added []string
	accept := func(candidate string) {
		found = append(found, candidate)
		added = append(added, candidate)
	}

	toks := s.Doc.Tokens
	for i := 0; i < len(toks)-1; i++ {
		if !locationTriggers[toks[i].Lower()] {
			continue
		}
		next := toks[i+1]
		if next.POS == nlp.POSVerb || next.EntType == nlp.LabelTime || next.EntType == nlp.LabelDate {
			continue
		}
		candidate, ok := locationCandidate(s.Doc, i)
		if !ok {
			continue
		}
		candidate = strings.TrimSpace(candidate)
		switch {
		case candidate == "",
			containsString(withs, candidate),
			containsString(found, candidate),
			timeValueRe.MatchString(candidate),
			anyIn(words(candidate), excluded),
			numericRe.MatchString(candidate),
			hasVerb(s, candidate):
			continue
		}
		accept(candidate)
	}

	for _, ent := range s.Doc.EntitiesWithLabel(nlp.LabelFac, nlp.LabelGPE, nlp.LabelLoc, nlp.LabelOrg) {
		switch {
		case containsString(s.Bundle.Participants, ent.Text),
			containsString(withs, ent.Text),
			timeValueRe.MatchString(ent.Text),
			containsString(found, ent.Text),
			insideAny(found, ent.Text),
			anyIn(words(ent.Text), excluded):
			continue
		}
		accept(ent.Text)
	}

	return Delta{AddLocations: added}
}

// locationCandidate picks the phrase following the preposition at i: the
// noun chunk starting right after it, else one or two tokens.
func locationCandidate(doc *nlp.Document, i int) (string, bool) {
	toks := doc.Tokens
	next := toks[i+1]

	if chunk, ok := doc.ChunkStartingAt(i + 1); ok {
		if toks[chunk.Start].POS == nlp.POSVerb {
			return "", false
		}
		return chunk.Text, true
	}
	if i+2 < len(toks) && (next.POS == nlp.POSAdj || next.POS == nlp.POSPropn || next.Dep == nlp.DepCompound) {
		if next.POS == nlp.POSVerb {
			return "", false
		}
		return next.Text + " " + toks[i+2].Text, true
	}
	if next.POS == nlp.POSVerb {
		return "", false
	}
	return next.Text, true
}

// insideAny reports whether phrase occurs as whole words inside one of set.
func insideAny(set []string, phrase string) bool {
	needle := " " + strings.Join(words(phrase), " ") + " "
	for _, s := range set {
		if strings.Contains(" "+strings.Join(words(s), " ")+" ", needle) {
			return true
		}
	}
	return false
}

// exclusionWords is the lower-cased word set a location may not contain.
func exclusionWords(s Snapshot, withs []string) map[string]bool {
	out := make(map[string]bool)
	for _, p := range s.Bundle.Participants {
		for _, w := range words(p) {
			out[w] = true
		}
	}
	for _, raw := range timeValueRe.FindAllString(s.Text, -1) {
		out[strings.ToLower(raw)] = true
		for _, w := range words(raw) {
			out[w] = true
		}
	}
	for _, w := range timeOfDayWords {
		out[w] = true
	}
	for _, span := range withs {
		for _, w := range words(span) {
			out[w] = true
		}
	}
	return out
}

// hasVerb annotates candidate on its own and reports whether any token is
// a verb. Without an engine, or when annotation fails, nothing is a verb.
func hasVerb(s Snapshot, candidate string) bool {
	if s.Reannotate == nil {
		return false
	}
	doc, err := s.Reannotate(candidate)
	if err != nil || doc == nil {
		return false
	}
	for _, t := range doc.Tokens {
		if t.POS == nlp.POSVerb {
			return true
		}
	}
	return false
}
