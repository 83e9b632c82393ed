// Package local is an in-process nlp.Engine built on the prose tagger and
// entity recogniser, a small temporal grammar and an optional YAML gazetteer.
package local

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"

	"nlp-task-calendar/pkg/nlp"
)

// EngineName is reported by Engine.Name.
const EngineName = "local"

// Config configures the local engine.
type Config struct {
	// GazetteerPath points at an optional YAML gazetteer file.
	GazetteerPath string
}

// Engine is safe for concurrent use. The tagging model and gazetteer are
// loaded on first use and shared afterwards.
type Engine struct {
	cfg Config

	once      sync.Once
	model     *prose.Model
	gazetteer *Gazetteer
	loadErr   error
}

// New creates a local engine. Nothing is loaded until Load or the first
// Annotate call.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Name implements nlp.Engine.
func (e *Engine) Name() string {
	return EngineName
}

// Load loads the model and gazetteer. It is called implicitly by Annotate;
// calling it at startup surfaces configuration errors early.
func (e *Engine) Load() error {
	e.once.Do(func() {
		if e.cfg.GazetteerPath != "" {
			g, err := LoadGazetteer(e.cfg.GazetteerPath)
			if err != nil {
				e.loadErr = err
				return
			}
			e.gazetteer = g
		}

		doc, err := prose.NewDocument("Load the model.", prose.WithSegmentation(false))
		if err != nil {
			e.loadErr = fmt.Errorf("load prose model: %w", err)
			return
		}
		e.model = doc.Model
	})
	return e.loadErr
}

// Annotate implements nlp.Engine.
func (e *Engine) Annotate(ctx context.Context, text string) (*nlp.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.Load(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.UsingModel(e.model),
	)
	if err != nil {
		return nil, fmt.Errorf("prose: %w", err)
	}

	tagged := make([]taggedWord, 0, len(doc.Tokens()))
	for _, t := range doc.Tokens() {
		tagged = append(tagged, taggedWord{Text: t.Text, Tag: t.Tag})
	}
	var found []foundEntity
	for _, ent := range doc.Entities() {
		found = append(found, foundEntity{Text: ent.Text, Label: ent.Label})
	}

	return annotate(text, tagged, found, e.gazetteer)
}

type taggedWord struct {
	Text string
	Tag  string
}

type foundEntity struct {
	Text  string
	Label string
}

// annotate turns tagger output into an nlp.Document. Entity priority is
// temporal grammar, then gazetteer, then the statistical recogniser; a
// later source never overlaps an earlier one.
func annotate(text string, tagged []taggedWord, found []foundEntity, gaz *Gazetteer) (*nlp.Document, error) {
	tagged = alignable(text, tagged)
	tokens := make([]nlp.Token, len(tagged))
	for i, w := range tagged {
		next := ""
		if i+1 < len(tagged) {
			next = tagged[i+1].Tag
		}
		tokens[i] = nlp.Token{
			Text: w.Text,
			POS:  coarsePOS(w.Tag, w.Text, next),
		}
	}
	fixImperative(tokens)
	for i := range tokens {
		tokens[i].Lemma = nlp.Lemma(tokens[i].Text, tokens[i].POS)
		tokens[i].IsStop = nlp.IsStopWord(tokens[i].Text)
	}

	chunks := parse(tokens)

	taken := make([]bool, len(tokens))
	var ents []nlp.Span
	claim := func(s nlp.Span) {
		for k := s.Start; k < s.End; k++ {
			if taken[k] {
				return
			}
		}
		for k := s.Start; k < s.End; k++ {
			taken[k] = true
		}
		ents = append(ents, s)
	}

	for _, s := range temporalSpans(tokens) {
		claim(s)
	}

	words := tokenTexts(tokens)
	for i := 0; i < len(words); i++ {
		if label, n := gaz.match(words, i); n > 0 {
			claim(nlp.Span{Start: i, End: i + n, Label: label})
		}
	}

	cursor := 0
	for _, f := range found {
		label, ok := mapProseLabel(f.Label)
		if !ok {
			continue
		}
		parts := strings.Fields(f.Text)
		if len(parts) == 0 || (len(parts) == 1 && isTemporalWord(parts[0])) {
			continue
		}
		start := findRun(words, parts, cursor)
		if start < 0 {
			continue
		}
		cursor = start + len(parts)
		span := nlp.Span{Start: start, End: start + len(parts), Label: label}
		if !plausibleEntity(tokens, span) {
			continue
		}
		claim(span)
	}

	slices.SortStableFunc(ents, func(a, b nlp.Span) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return nlp.NewDocument(text, tokens, ents, chunks)
}

// alignable drops tokens the tokenizer rewrote (quote normalisation) so that
// every remaining token can be located in text.
func alignable(text string, tagged []taggedWord) []taggedWord {
	out := tagged[:0:0]
	cursor := 0
	for _, w := range tagged {
		if w.Text == "" {
			continue
		}
		idx := strings.Index(text[cursor:], w.Text)
		if idx < 0 {
			continue
		}
		cursor += idx + len(w.Text)
		out = append(out, w)
	}
	return out
}

func mapProseLabel(label string) (string, bool) {
	switch strings.ToUpper(label) {
	case "PERSON":
		return nlp.LabelPerson, true
	case "GPE":
		return nlp.LabelGPE, true
	case "ORG", "ORGANIZATION":
		return nlp.LabelOrg, true
	case "LOC", "LOCATION":
		return nlp.LabelLoc, true
	case "FAC", "FACILITY":
		return nlp.LabelFac, true
	}
	return "", false
}

// plausibleEntity filters recogniser spans that are really the verb or
// the capitalised first word of a sentence ("Drive", "Lunch"). A span may
// not contain a verb, must start on a proper noun and, when it is a single
// word, may not open the sentence.
func plausibleEntity(tokens []nlp.Token, s nlp.Span) bool {
	for k := s.Start; k < s.End; k++ {
		if tokens[k].POS == nlp.POSVerb || tokens[k].POS == nlp.POSAux {
			return false
		}
	}
	if tokens[s.Start].POS != nlp.POSPropn {
		return false
	}
	return s.End-s.Start > 1 || s.Start > 0
}
