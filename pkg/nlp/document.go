package nlp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrTokenNotFound = errors.New("token text not found in source")
	ErrBadSpan       = errors.New("span out of range")
)

// Document is an annotated text. Treat it as read-only once built.
type Document struct {
	Text       string  `json:"text"`
	Tokens     []Token `json:"tokens"`
	Entities   []Span  `json:"entities"`
	NounChunks []Span  `json:"noun_chunks"`
}

// NewDocument assembles a Document and normalises it: token indexes and byte
// offsets are recomputed from text, span texts are sliced from the source and
// each token's EntType is set from the entity covering it.
func NewDocument(text string, tokens []Token, entities, chunks []Span) (*Document, error) {
	doc := &Document{
		Text:       text,
		Tokens:     make([]Token, len(tokens)),
		Entities:   make([]Span, 0, len(entities)),
		NounChunks: make([]Span, 0, len(chunks)),
	}
	copy(doc.Tokens, tokens)

	if err := alignOffsets(text, doc.Tokens); err != nil {
		return nil, err
	}
	for i := range doc.Tokens {
		doc.Tokens[i].Index = i
		doc.Tokens[i].EntType = ""
		if h := doc.Tokens[i].Head; h < 0 || h >= len(doc.Tokens) {
			doc.Tokens[i].Head = i
		}
	}

	for _, s := range entities {
		if s.Start < 0 || s.End > len(doc.Tokens) || s.Start >= s.End {
			return nil, fmt.Errorf("%w: entity %q [%d,%d)", ErrBadSpan, s.Label, s.Start, s.End)
		}
		s.Text = doc.SpanText(s.Start, s.End)
		for i := s.Start; i < s.End; i++ {
			if doc.Tokens[i].EntType == "" {
				doc.Tokens[i].EntType = s.Label
			}
		}
		doc.Entities = append(doc.Entities, s)
	}

	for _, s := range chunks {
		if s.Start < 0 || s.End > len(doc.Tokens) || s.Start >= s.End {
			return nil, fmt.Errorf("%w: noun chunk [%d,%d)", ErrBadSpan, s.Start, s.End)
		}
		s.Text = doc.SpanText(s.Start, s.End)
		doc.NounChunks = append(doc.NounChunks, s)
	}

	return doc, nil
}

// alignOffsets finds every token in text, left to right.
func alignOffsets(text string, tokens []Token) error {
	cursor := 0
	for i := range tokens {
		if tokens[i].Text == "" {
			return fmt.Errorf("%w: empty token at %d", ErrTokenNotFound, i)
		}
		idx := strings.Index(text[cursor:], tokens[i].Text)
		if idx < 0 {
			return fmt.Errorf("%w: %q after offset %d", ErrTokenNotFound, tokens[i].Text, cursor)
		}
		tokens[i].Offset = cursor + idx
		cursor = tokens[i].Offset + len(tokens[i].Text)
	}
	return nil
}

// Len returns the number of tokens.
func (d *Document) Len() int {
	return len(d.Tokens)
}

// SpanText returns the source text covered by tokens [start, end), keeping the
// original whitespace between them.
func (d *Document) SpanText(start, end int) string {
	if start < 0 || end > len(d.Tokens) || start >= end {
		return ""
	}
	first := d.Tokens[start]
	last := d.Tokens[end-1]
	return d.Text[first.Offset : last.Offset+len(last.Text)]
}

// Children returns the indexes of tokens whose head is i, in order.
func (d *Document) Children(i int) []int {
	var out []int
	for _, t := range d.Tokens {
		if t.Head == i && t.Index != i {
			out = append(out, t.Index)
		}
	}
	return out
}

// EntitiesWithLabel returns entity spans carrying any of labels.
func (d *Document) EntitiesWithLabel(labels ...string) []Span {
	var out []Span
	for _, e := range d.Entities {
		for _, l := range labels {
			if e.Label == l {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// ChunkStartingAt returns the noun chunk whose first token is i.
func (d *Document) ChunkStartingAt(i int) (Span, bool) {
	for _, c := range d.NounChunks {
		if c.Start == i {
			return c, true
		}
	}
	return Span{}, false
}

// IsCapitalized reports whether the token text starts with an upper-case letter.
func (t Token) IsCapitalized() bool {
	r, _ := utf8.DecodeRuneInString(t.Text)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// Lower is the lower-cased token text.
func (t Token) Lower() string {
	return strings.ToLower(t.Text)
}
