package extractor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nlp-task-calendar/internal/model"
	"nlp-task-calendar/pkg/datemath"
	"nlp-task-calendar/pkg/nlp"
)

// Snapshot is the read-only view a rule works on. Bundle is a private copy
// holding the deltas of every earlier rule.
type Snapshot struct {
	Doc    *nlp.Document
	Text   string
	Now    time.Time
	Dates  *datemath.Parser
	Bundle model.EntityBundle

	// Reannotate runs the engine on a fragment. May be nil.
	Reannotate func(text string) (*nlp.Document, error)
}

// Delta is what a rule wants changed. Empty fields change nothing.
type Delta struct {
	Task    *string
	Date    string
	Time    string
	EndTime string

	AddParticipants    []string
	RemoveParticipants []string
	AddLocations       []string
	RemoveLocations    []string
}

// IsEmpty reports whether d changes nothing.
func (d Delta) IsEmpty() bool {
	return d.Task == nil && d.Date == "" && d.Time == "" && d.EndTime == "" &&
		len(d.AddParticipants) == 0 && len(d.RemoveParticipants) == 0 &&
		len(d.AddLocations) == 0 && len(d.RemoveLocations) == 0
}

func setTask(task string) Delta {
	return Delta{Task: &task}
}

// Rule is one pure pipeline stage.
type Rule interface {
	Name() string
	Apply(s Snapshot) Delta
}

type ruleFunc struct {
	name string
	fn   func(Snapshot) Delta
}

func (r ruleFunc) Name() string           { return r.name }
func (r ruleFunc) Apply(s Snapshot) Delta { return r.fn(s) }

// NewRule adapts a function to Rule.
func NewRule(name string, fn func(Snapshot) Delta) Rule {
	return ruleFunc{name: name, fn: fn}
}

// defaultRules is the fixed stage order.
func defaultRules() []Rule {
	return []Rule{
		NewRule("participants", extractParticipants),
		NewRule("datetime", extractDateTime),
		NewRule("locations", extractLocations),
		NewRule("disambiguate", disambiguate),
		NewRule("task", extractTask),
		NewRule("task_cleanup", cleanupTask),
		NewRule("task_scrub", scrubTask),
	}
}

// reduce applies d to b.
//   - date is only set while absent
//   - a delta carrying EndTime sets time and end_time together
//   - a single time is only set while absent
//   - removals run before additions; additions are trimmed and unique
func reduce(b *model.EntityBundle, d Delta) {
	if d.Task != nil {
		b.Task = strings.TrimSpace(*d.Task)
	}
	if d.Date != "" && b.Date == "" {
		b.Date = strings.TrimSpace(d.Date)
	}
	switch {
	case d.Time != "" && d.EndTime != "":
		b.Time = strings.TrimSpace(d.Time)
		b.EndTime = strings.TrimSpace(d.EndTime)
	case d.Time != "" && b.Time == "":
		b.Time = strings.TrimSpace(d.Time)
	}

	for _, v := range d.RemoveLocations {
		b.Locations = model.Remove(b.Locations, v)
	}
	for _, v := range d.RemoveParticipants {
		b.Participants = model.Remove(b.Participants, v)
	}
	for _, v := range d.AddParticipants {
		b.Participants = model.AddUnique(b.Participants, v)
	}
	for _, v := range d.AddLocations {
		b.Locations = model.AddUnique(b.Locations, v)
	}
}

// applyRule runs r and turns a panic into an empty delta.
func (e *Extractor) applyRule(ctx context.Context, r Rule, s Snapshot) (d Delta) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Errorf(ctx, "extractor.applyRule: rule %s panicked: %v", r.Name(), rec)
			if e.metrics != nil {
				e.metrics.RulePanicsTotal.WithLabelValues(r.Name()).Inc()
			}
			d = Delta{}
		}
		if e.metrics != nil {
			e.metrics.RuleDuration.WithLabelValues(r.Name()).Observe(time.Since(start).Seconds())
		}
	}()
	return r.Apply(s)
}

func (d Delta) String() string {
	var parts []string
	if d.Task != nil {
		parts = append(parts, fmt.Sprintf("task=%q", *d.Task))
	}
	if d.Date != "" {
		parts = append(parts, "date="+d.Date)
	}
	if d.Time != "" {
		parts = append(parts, "time="+d.Time)
	}
	if d.EndTime != "" {
		parts = append(parts, "end_time="+d.EndTime)
	}
	if len(d.AddParticipants) > 0 {
		parts = append(parts, fmt.Sprintf("+participants=%q", d.AddParticipants))
	}
	if len(d.RemoveParticipants) > 0 {
		parts = append(parts, fmt.Sprintf("-participants=%q", d.RemoveParticipants))
	}
	if len(d.AddLocations) > 0 {
		parts = append(parts, fmt.Sprintf("+locations=%q", d.AddLocations))
	}
	if len(d.RemoveLocations) > 0 {
		parts = append(parts, fmt.Sprintf("-locations=%q", d.RemoveLocations))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
