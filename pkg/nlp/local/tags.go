package local

import (
	"strings"
	"unicode"

	"nlp-task-calendar/pkg/nlp"
)

// imperativeVerbs are verbs that commonly open a task sentence. The tagger
// tends to read a capitalised first word as a proper noun ("Call", "Email"),
// so a sentence-initial match is forced back to VERB.
var imperativeVerbs = map[string]bool{
	"attend": true, "book": true, "buy": true, "call": true, "check": true, "clean": true,
	"contact": true, "cook": true, "discuss": true, "drive": true, "email": true, "finish": true,
	"fix": true, "fly": true, "go": true, "have": true, "invite": true, "meet": true,
	"pay": true, "pick": true, "plan": true, "play": true, "prepare": true, "read": true,
	"remind": true, "review": true, "schedule": true, "send": true, "study": true,
	"submit": true, "talk": true, "text": true, "update": true, "visit": true, "walk": true,
	"watch": true, "write": true,
}

var subordinators = map[string]bool{
	"although": true, "because": true, "if": true, "since": true, "that": true,
	"though": true, "unless": true, "whether": true, "while": true,
}

var beForms = map[string]bool{
	"am": true, "is": true, "are": true, "was": true, "were": true, "be": true, "been": true, "being": true,
}

// coarsePOS maps a Penn Treebank tag to a coarse tag. next is the Penn tag
// of the following token ("" at the end).
func coarsePOS(tag, word, next string) nlp.POS {
	lower := strings.ToLower(word)
	switch tag {
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ":
		if beForms[lower] {
			return nlp.POSAux
		}
		if (nlp.Lemma(lower, nlp.POSVerb) == "have" || nlp.Lemma(lower, nlp.POSVerb) == "do") && strings.HasPrefix(next, "VB") {
			return nlp.POSAux
		}
		return nlp.POSVerb
	case "MD":
		return nlp.POSAux
	case "NN", "NNS":
		return nlp.POSNoun
	case "NNP", "NNPS":
		return nlp.POSPropn
	case "JJ", "JJR", "JJS":
		return nlp.POSAdj
	case "RB", "RBR", "RBS", "WRB":
		return nlp.POSAdv
	case "RP":
		return nlp.POSAdp
	case "IN":
		if subordinators[lower] {
			return nlp.POSSconj
		}
		return nlp.POSAdp
	case "TO":
		if strings.HasPrefix(next, "VB") {
			return nlp.POSPart
		}
		return nlp.POSAdp
	case "DT", "PDT", "WDT":
		return nlp.POSDet
	case "PRP", "PRP$", "WP", "WP$", "EX":
		return nlp.POSPron
	case "CD":
		return nlp.POSNum
	case "CC":
		return nlp.POSCconj
	case "UH":
		return nlp.POSIntj
	case "POS":
		return nlp.POSPart
	case "SYM", "$", "#":
		return nlp.POSSym
	case ".", ",", ":", "(", ")", "``", "''", "-LRB-", "-RRB-", "NFP", "HYPH":
		return nlp.POSPunct
	}
	if isPunct(word) {
		return nlp.POSPunct
	}
	return nlp.POSOther
}

// fixImperative re-tags a sentence-initial imperative verb.
func fixImperative(tokens []nlp.Token) {
	if len(tokens) == 0 {
		return
	}
	first := &tokens[0]
	if first.POS == nlp.POSVerb || first.POS == nlp.POSAux {
		return
	}
	if imperativeVerbs[strings.ToLower(first.Text)] {
		first.POS = nlp.POSVerb
	}
}

func isPunct(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
