// Package llmengine implements nlp.Engine by asking an LLM for a spaCy-style
// annotation of the text.
package llmengine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"nlp-task-calendar/pkg/llmprovider"
	"nlp-task-calendar/pkg/nlp"
)

// EngineName is reported by Engine.Name.
const EngineName = "llm"

// ErrMalformedAnnotation is returned when the model reply cannot be turned
// into a document.
var ErrMalformedAnnotation = errors.New("malformed annotation")

// Generator is the part of llmprovider.Manager the engine uses.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Engine is safe for concurrent use if the generator is.
type Engine struct {
	gen Generator
}

// New creates an engine backed by gen.
func New(gen Generator) *Engine {
	return &Engine{gen: gen}
}

// Name implements nlp.Engine.
func (e *Engine) Name() string {
	return EngineName
}

// Annotate implements nlp.Engine.
func (e *Engine) Annotate(ctx context.Context, text string) (*nlp.Document, error) {
	resp, err := e.gen.GenerateContent(ctx, &llmprovider.Request{
		System:      systemPrompt,
		Prompt:      text,
		Temperature: 0,
		JSON:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("llmengine: %w", err)
	}
	return decode(text, resp.Text)
}

type annotation struct {
	Tokens []struct {
		Text  string `json:"text"`
		Lemma string `json:"lemma"`
		POS   string `json:"pos"`
		Dep   string `json:"dep"`
		Head  int    `json:"head"`
	} `json:"tokens"`
	Entities   []span `json:"entities"`
	NounChunks []span `json:"noun_chunks"`
}

type span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

var knownPOS = map[nlp.POS]bool{
	nlp.POSVerb: true, nlp.POSAux: true, nlp.POSNoun: true, nlp.POSPropn: true,
	nlp.POSAdj: true, nlp.POSAdv: true, nlp.POSAdp: true, nlp.POSDet: true,
	nlp.POSPron: true, nlp.POSNum: true, nlp.POSCconj: true, nlp.POSSconj: true,
	nlp.POSPart: true, nlp.POSPunct: true, nlp.POSSym: true, nlp.POSIntj: true,
}

// decode validates a model reply. Stop flags always come from the shared
// lexicon; lemmas fall back to it when missing. Out-of-range spans are
// dropped.
func decode(text, reply string) (*nlp.Document, error) {
	var a annotation
	if err := json.Unmarshal([]byte(stripFences(reply)), &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnnotation, err)
	}
	if len(a.Tokens) == 0 && strings.TrimSpace(text) != "" {
		return nil, fmt.Errorf("%w: no tokens", ErrMalformedAnnotation)
	}

	tokens := make([]nlp.Token, len(a.Tokens))
	for i, t := range a.Tokens {
		pos := nlp.POS(strings.ToUpper(t.POS))
		if !knownPOS[pos] {
			pos = nlp.POSOther
		}
		dep := nlp.Dep(strings.ToLower(t.Dep))
		if strings.EqualFold(t.Dep, string(nlp.DepRoot)) {
			dep = nlp.DepRoot
		}
		lemma := strings.ToLower(t.Lemma)
		if lemma == "" {
			lemma = nlp.Lemma(t.Text, pos)
		}
		tokens[i] = nlp.Token{
			Text:   t.Text,
			Lemma:  lemma,
			POS:    pos,
			Dep:    dep,
			Head:   t.Head,
			IsStop: nlp.IsStopWord(t.Text),
		}
	}

	valid := func(s span) bool { return s.Start >= 0 && s.End <= len(tokens) && s.Start < s.End }

	var ents []nlp.Span
	for _, s := range a.Entities {
		if valid(s) {
			ents = append(ents, nlp.Span{Start: s.Start, End: s.End, Label: strings.ToUpper(s.Label)})
		}
	}
	var chunks []nlp.Span
	for _, s := range a.NounChunks {
		if valid(s) {
			chunks = append(chunks, nlp.Span{Start: s.Start, End: s.End})
		}
	}

	doc, err := nlp.NewDocument(text, tokens, ents, chunks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnnotation, err)
	}
	return doc, nil
}

// stripFences removes a surrounding ```json fence if the model added one.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
