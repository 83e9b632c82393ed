package extractor

import "nlp-task-calendar/pkg/nlp"

// withSpans returns every "with <Name ...>" span: after "with", skip stop
// words, punctuation and determiners, then take a run of name-like tokens
// that stops before another trigger word.
func withSpans(doc *nlp.Document) []string {
	toks := doc.Tokens
	var out []string
	for i := 0; i < len(toks)-1; i++ {
		if toks[i].Lower() != "with" {
			continue
		}
		j := i + 1
		for j < len(toks) && skippable(toks[j]) {
			j++
		}
		if j >= len(toks) || !nameLike(toks[j]) {
			continue
		}
		end := j
		for end+1 < len(toks) && nameLike(toks[end+1]) && !isTriggerAt(toks, end+1) {
			end++
		}
		span := doc.SpanText(j, end+1)
		if !containsString(out, span) {
			out = append(out, span)
		}
	}
	return out
}
