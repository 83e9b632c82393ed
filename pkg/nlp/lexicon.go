package nlp

import "strings"

// stopWords is the English stop-word list shared by the engine adapters.
var stopWords = toSet(`a about above after again against all almost alone along already also
although always am among amongst an and another any anyhow anyone anything anyway anywhere
are around as at back be became because become becomes becoming been before beforehand
behind being below beside besides between beyond both bottom but by call can cannot could
did do does doing done down due during each either else elsewhere empty enough even ever
every everyone everything everywhere except few first for former formerly from front full
further get give go had has have he hence her here hereafter hereby herein hereupon hers
herself him himself his how however i if in indeed into is it its itself just keep last
latter latterly least less made make many may me meanwhile might mine more moreover most
mostly move much must my myself name namely neither never nevertheless next no nobody none
noone nor not nothing now nowhere of off often on once one only onto or other others
otherwise our ours ourselves out over own part per perhaps please put quite rather re
really regarding same say see seem seemed seeming seems serious several she should show
side since so some somehow someone something sometime sometimes somewhere still such take
than that the their theirs them themselves then thence there thereafter thereby therefore
therein thereupon these they third this those though three through throughout thru thus to
together too top toward towards twelve twenty two under unless until up upon us used using
various very via was we well were what whatever when whence whenever where whereafter
whereas whereby wherein whereupon wherever whether which while whither who whoever whole
whom whose why will with within without would yet you your yours yourself yourselves`)

// IsStopWord reports whether word (any case) is a stop word.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}

// irregularLemmas covers verbs and nouns the suffix rules get wrong.
var irregularLemmas = map[string]string{
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be", "been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do",
	"went": "go", "gone": "go", "goes": "go",
	"made": "make", "took": "take", "taken": "take",
	"met": "meet", "meeting": "meet",
	"ate": "eat", "eaten": "eat",
	"drove": "drive", "driven": "drive",
	"wrote": "write", "written": "write",
	"spoke": "speak", "spoken": "speak",
	"saw": "see", "seen": "see",
	"came": "come", "bought": "buy", "brought": "bring",
	"thought": "think", "told": "tell", "sent": "send",
	"invited": "invite", "inviting": "invite", "visited": "visit",
	"left": "leave", "ran": "run", "began": "begin", "begun": "begin",
	"flew": "fly", "flown": "fly", "paid": "pay", "said": "say",
	"people": "person", "children": "child", "men": "man", "women": "woman",
}

// Lemma returns a best-effort lemma for word given its coarse POS. Only verbs
// and nouns are reduced; other words are lower-cased.
func Lemma(word string, pos POS) string {
	w := strings.ToLower(word)
	if l, ok := irregularLemmas[w]; ok && (pos == POSVerb || pos == POSAux || pos == POSNoun) {
		return l
	}
	switch pos {
	case POSVerb, POSAux:
		return verbLemma(w)
	case POSNoun:
		return nounLemma(w)
	case POSPropn:
		return word
	}
	return w
}

func verbLemma(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		return restoreStem(w[:len(w)-3])
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		return restoreStem(w[:len(w)-2])
	case strings.HasSuffix(w, "es") && len(w) > 4 && hasSibilantEnd(w[:len(w)-2]):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 3:
		return w[:len(w)-1]
	}
	return w
}

func nounLemma(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "es") && len(w) > 4 && hasSibilantEnd(w[:len(w)-2]):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us") && len(w) > 3:
		return w[:len(w)-1]
	}
	return w
}

// restoreStem undoes doubling ("planned" -> "plan") and a dropped final e
// ("scheduled" -> "schedule").
func restoreStem(stem string) string {
	n := len(stem)
	if n >= 3 && stem[n-1] == stem[n-2] && isConsonant(stem[n-1]) && stem[n-1] != 'l' && stem[n-1] != 's' {
		return stem[:n-1]
	}
	if n >= 3 && isConsonant(stem[n-1]) && !isConsonant(stem[n-2]) && isConsonant(stem[n-3]) &&
		strings.ContainsRune("cdgkvz", rune(stem[n-1])) {
		return stem + "e"
	}
	if strings.HasSuffix(stem, "ul") || (strings.HasSuffix(stem, "at") && n > 4) || strings.HasSuffix(stem, "iz") {
		return stem + "e"
	}
	return stem
}

func hasSibilantEnd(s string) bool {
	return strings.HasSuffix(s, "s") || strings.HasSuffix(s, "x") || strings.HasSuffix(s, "z") ||
		strings.HasSuffix(s, "ch") || strings.HasSuffix(s, "sh")
}

func isConsonant(b byte) bool {
	return b >= 'a' && b <= 'z' && !strings.ContainsRune("aeiouy", rune(b))
}

func toSet(words string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		out[w] = struct{}{}
	}
	return out
}
