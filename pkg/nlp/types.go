// Package nlp defines what the extraction pipeline needs from a language
// engine: tokens with lemma, coarse part of speech, dependency label and
// stop-word flag, plus labelled entity spans and noun chunks over the same text.
package nlp

import "context"

// POS is a coarse (Universal Dependencies style) part-of-speech tag.
type POS string

const (
	POSVerb  POS = "VERB"
	POSAux   POS = "AUX"
	POSNoun  POS = "NOUN"
	POSPropn POS = "PROPN"
	POSAdj   POS = "ADJ"
	POSAdv   POS = "ADV"
	POSAdp   POS = "ADP"
	POSDet   POS = "DET"
	POSPron  POS = "PRON"
	POSNum   POS = "NUM"
	POSCconj POS = "CCONJ"
	POSSconj POS = "SCONJ"
	POSPart  POS = "PART"
	POSPunct POS = "PUNCT"
	POSSym   POS = "SYM"
	POSIntj  POS = "INTJ"
	POSOther POS = "X"
)

// Dep is a dependency relation label.
type Dep string

const (
	DepRoot     Dep = "ROOT"
	DepDObj     Dep = "dobj"
	DepAttr     Dep = "attr"
	DepPrep     Dep = "prep"
	DepPObj     Dep = "pobj"
	DepCompound Dep = "compound"
	DepNSubj    Dep = "nsubj"
	DepAmod     Dep = "amod"
	DepDet      Dep = "det"
	DepOther    Dep = "dep"
)

// Entity labels the pipeline looks at.
const (
	LabelPerson = "PERSON"
	LabelDate   = "DATE"
	LabelTime   = "TIME"
	LabelGPE    = "GPE"
	LabelLoc    = "LOC"
	LabelFac    = "FAC"
	LabelOrg    = "ORG"
)

// Token is one token of an annotated text.
type Token struct {
	Index   int    `json:"i"`
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	POS     POS    `json:"pos"`
	Dep     Dep    `json:"dep"`
	Head    int    `json:"head"`
	IsStop  bool   `json:"is_stop"`
	EntType string `json:"ent_type,omitempty"`
	Offset  int    `json:"offset"`
}

// Span is a half-open token range [Start, End) with a label and its text.
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
}

// Engine annotates text. Implementations must be safe for concurrent use and
// must not mutate a Document after returning it.
type Engine interface {
	Annotate(ctx context.Context, text string) (*Document, error)
	Name() string
}
