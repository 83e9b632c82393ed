package extractor

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nlp-task-calendar/pkg/datemath"
	"nlp-task-calendar/pkg/nlp"
)

// Monday 19 October 2026, 10:00 UTC.
var testNow = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func tk(text string, pos nlp.POS, dep nlp.Dep, head int) nlp.Token {
	return nlp.Token{
		Text:   text,
		Lemma:  nlp.Lemma(text, pos),
		POS:    pos,
		Dep:    dep,
		Head:   head,
		IsStop: nlp.IsStopWord(text),
	}
}

func span(start, end int, label string) nlp.Span {
	return nlp.Span{Start: start, End: end, Label: label}
}

func mustDoc(t *testing.T, text string, toks []nlp.Token, ents, chunks []nlp.Span) *nlp.Document {
	t.Helper()
	doc, err := nlp.NewDocument(text, toks, ents, chunks)
	require.NoError(t, err)
	return doc
}

// fakeEngine returns prepared documents. Unknown texts are split on spaces;
// words in verbs come back as VERB and everything else as PROPN.
type fakeEngine struct {
	docs  map[string]*nlp.Document
	verbs map[string]bool
	err   error
	calls atomic.Int32
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{docs: map[string]*nlp.Document{}, verbs: map[string]bool{}}
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Annotate(_ context.Context, text string) (*nlp.Document, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if doc, ok := f.docs[text]; ok {
		return doc, nil
	}
	var toks []nlp.Token
	for _, w := range strings.Fields(text) {
		pos := nlp.POSPropn
		if f.verbs[strings.ToLower(w)] {
			pos = nlp.POSVerb
		}
		toks = append(toks, tk(w, pos, nlp.DepOther, 0))
	}
	return nlp.NewDocument(text, toks, nil, nil)
}

func (f *fakeEngine) add(doc *nlp.Document) {
	f.docs[doc.Text] = doc
}

func testParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	return p
}

// driveDoc annotates "Drive to Chicago with Ashley from 10AM to 4PM".
func driveDoc(t *testing.T) *nlp.Document {
	return mustDoc(t, "Drive to Chicago with Ashley from 10AM to 4PM",
		[]nlp.Token{
			tk("Drive", nlp.POSVerb, nlp.DepRoot, 0),
			tk("to", nlp.POSAdp, nlp.DepPrep, 0),
			tk("Chicago", nlp.POSPropn, nlp.DepPObj, 1),
			tk("with", nlp.POSAdp, nlp.DepPrep, 0),
			tk("Ashley", nlp.POSPropn, nlp.DepPObj, 3),
			tk("from", nlp.POSAdp, nlp.DepPrep, 0),
			tk("10AM", nlp.POSNum, nlp.DepPObj, 5),
			tk("to", nlp.POSAdp, nlp.DepPrep, 0),
			tk("4PM", nlp.POSNum, nlp.DepPObj, 7),
		},
		[]nlp.Span{span(2, 3, nlp.LabelGPE), span(4, 5, nlp.LabelPerson), span(6, 7, nlp.LabelTime), span(8, 9, nlp.LabelTime)},
		[]nlp.Span{span(2, 3, ""), span(4, 5, "")},
	)
}

func callTeamDoc(t *testing.T) *nlp.Document {
	return mustDoc(t, "Call the team tomorrow",
		[]nlp.Token{
			tk("Call", nlp.POSVerb, nlp.DepRoot, 0),
			tk("the", nlp.POSDet, nlp.DepDet, 2),
			tk("team", nlp.POSNoun, nlp.DepDObj, 0),
			tk("tomorrow", nlp.POSNoun, nlp.DepOther, 0),
		},
		[]nlp.Span{span(3, 4, nlp.LabelDate)},
		[]nlp.Span{span(1, 3, "")},
	)
}

func meetMeetDoc(t *testing.T) *nlp.Document {
	return mustDoc(t, "Meet Meet John tomorrow",
		[]nlp.Token{
			tk("Meet", nlp.POSVerb, nlp.DepRoot, 0),
			tk("Meet", nlp.POSVerb, nlp.DepOther, 0),
			tk("John", nlp.POSPropn, nlp.DepDObj, 1),
			tk("tomorrow", nlp.POSNoun, nlp.DepOther, 0),
		},
		[]nlp.Span{span(2, 3, nlp.LabelPerson), span(3, 4, nlp.LabelDate)},
		[]nlp.Span{span(2, 3, "")},
	)
}

func meetingRangeDoc(t *testing.T) *nlp.Document {
	return mustDoc(t, "Meeting from 2pm to 5pm",
		[]nlp.Token{
			tk("Meeting", nlp.POSNoun, nlp.DepRoot, 0),
			tk("from", nlp.POSAdp, nlp.DepPrep, 0),
			tk("2pm", nlp.POSNum, nlp.DepPObj, 1),
			tk("to", nlp.POSAdp, nlp.DepPrep, 0),
			tk("5pm", nlp.POSNum, nlp.DepPObj, 3),
		},
		[]nlp.Span{span(2, 3, nlp.LabelTime), span(4, 5, nlp.LabelTime)},
		[]nlp.Span{span(0, 1, "")},
	)
}

func lunchDoc(t *testing.T) *nlp.Document {
	return mustDoc(t, "Lunch at noon",
		[]nlp.Token{
			tk("Lunch", nlp.POSNoun, nlp.DepRoot, 0),
			tk("at", nlp.POSAdp, nlp.DepPrep, 0),
			tk("noon", nlp.POSNoun, nlp.DepPObj, 1),
		},
		[]nlp.Span{span(2, 3, nlp.LabelTime)},
		[]nlp.Span{span(0, 1, ""), span(2, 3, "")},
	)
}

func officeDoc(t *testing.T) *nlp.Document {
	return mustDoc(t, "Meet Bob at the office tomorrow",
		[]nlp.Token{
			tk("Meet", nlp.POSVerb, nlp.DepRoot, 0),
			tk("Bob", nlp.POSPropn, nlp.DepDObj, 0),
			tk("at", nlp.POSAdp, nlp.DepPrep, 0),
			tk("the", nlp.POSDet, nlp.DepDet, 4),
			tk("office", nlp.POSNoun, nlp.DepPObj, 2),
			tk("tomorrow", nlp.POSNoun, nlp.DepOther, 0),
		},
		[]nlp.Span{span(1, 2, nlp.LabelPerson), span(5, 6, nlp.LabelDate)},
		[]nlp.Span{span(1, 2, ""), span(3, 5, "")},
	)
}
