package local

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"nlp-task-calendar/pkg/nlp"
)

// Gazetteer maps known multi-word names to entity labels. Names are matched
// case-sensitively against token runs.
type Gazetteer struct {
	entries []gazetteerEntry
}

type gazetteerEntry struct {
	words []string
	label string
}

type gazetteerFile struct {
	Entities []struct {
		Text  string `yaml:"text"`
		Label string `yaml:"label"`
	} `yaml:"entities"`
}

var allowedGazetteerLabels = map[string]bool{
	nlp.LabelPerson: true,
	nlp.LabelGPE:    true,
	nlp.LabelLoc:    true,
	nlp.LabelFac:    true,
	nlp.LabelOrg:    true,
}

// LoadGazetteer reads a YAML gazetteer file.
//
//	entities:
//	  - text: Central Park
//	    label: LOC
func LoadGazetteer(path string) (*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gazetteer: %w", err)
	}
	return ParseGazetteer(data)
}

// ParseGazetteer parses gazetteer YAML. Longer names are matched first.
func ParseGazetteer(data []byte) (*Gazetteer, error) {
	var f gazetteerFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse gazetteer: %w", err)
	}

	g := &Gazetteer{}
	for i, e := range f.Entities {
		label := strings.ToUpper(strings.TrimSpace(e.Label))
		if !allowedGazetteerLabels[label] {
			return nil, fmt.Errorf("gazetteer entry %d (%q): unsupported label %q", i, e.Text, e.Label)
		}
		words := strings.Fields(e.Text)
		if len(words) == 0 {
			return nil, fmt.Errorf("gazetteer entry %d: empty text", i)
		}
		g.entries = append(g.entries, gazetteerEntry{words: words, label: label})
	}

	// Longest first so "Central Park Zoo" wins over "Central Park".
	for i := 1; i < len(g.entries); i++ {
		for j := i; j > 0 && len(g.entries[j].words) > len(g.entries[j-1].words); j-- {
			g.entries[j], g.entries[j-1] = g.entries[j-1], g.entries[j]
		}
	}
	return g, nil
}

// Len returns the number of entries.
func (g *Gazetteer) Len() int {
	if g == nil {
		return 0
	}
	return len(g.entries)
}

// match returns the label and length of the longest entry starting at token i.
func (g *Gazetteer) match(tokens []string, i int) (string, int) {
	if g == nil {
		return "", 0
	}
	for _, e := range g.entries {
		if i+len(e.words) > len(tokens) {
			continue
		}
		ok := true
		for k, w := range e.words {
			if tokens[i+k] != w {
				ok = false
				break
			}
		}
		if ok {
			return e.label, len(e.words)
		}
	}
	return "", 0
}
