package model

import (
	"encoding/json"
	"strings"
)

// Bundle date and time layouts.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// EntityBundle is the structured result of extracting one task sentence.
// Task is always emitted, possibly empty. Other empty scalar fields mean
// "absent" and serialise as JSON null. Participants
// and Locations are insertion-ordered, case-sensitive sets.
type EntityBundle struct {
	Task         string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM, 24h
	EndTime      string // HH:MM, 24h
	Participants []string
	Locations    []string
}

type bundleJSON struct {
	Task         *string  `json:"task"`
	Date         *string  `json:"date"`
	Time         *string  `json:"time"`
	EndTime      *string  `json:"end_time"`
	Participants []string `json:"participants"`
	Locations    []string `json:"locations"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// MarshalJSON always emits the six fields.
func (b EntityBundle) MarshalJSON() ([]byte, error) {
	out := bundleJSON{
		Task:         &b.Task,
		Date:         optional(b.Date),
		Time:         optional(b.Time),
		EndTime:      optional(b.EndTime),
		Participants: b.Participants,
		Locations:    b.Locations,
	}
	if out.Participants == nil {
		out.Participants = []string{}
	}
	if out.Locations == nil {
		out.Locations = []string{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts null or missing scalars as absent.
func (b *EntityBundle) UnmarshalJSON(data []byte) error {
	var in bundleJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*b = EntityBundle{
		Task:         deref(in.Task),
		Date:         deref(in.Date),
		Time:         deref(in.Time),
		EndTime:      deref(in.EndTime),
		Participants: in.Participants,
		Locations:    in.Locations,
	}
	return nil
}

// Clone returns a deep copy.
func (b EntityBundle) Clone() EntityBundle {
	c := b
	c.Participants = append([]string(nil), b.Participants...)
	c.Locations = append([]string(nil), b.Locations...)
	return c
}

// HasParticipant reports whether name is already a participant.
func (b EntityBundle) HasParticipant(name string) bool {
	return contains(b.Participants, name)
}

// HasLocation reports whether name is already a location.
func (b EntityBundle) HasLocation(name string) bool {
	return contains(b.Locations, name)
}

// Overlap returns values present in both participants and locations.
func (b EntityBundle) Overlap() []string {
	var out []string
	for _, p := range b.Participants {
		if contains(b.Locations, p) {
			out = append(out, p)
		}
	}
	return out
}

// AddUnique appends the trimmed value to set unless it is empty or present.
func AddUnique(set []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || contains(set, value) {
		return set
	}
	return append(set, value)
}

// Remove returns set without value, keeping order.
func Remove(set []string, value string) []string {
	out := set[:0:0]
	for _, s := range set {
		if s != value {
			out = append(out, s)
		}
	}
	return out
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
