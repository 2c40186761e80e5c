package fristen

import (
	"time"

	"github.com/hochfrequenz/fristenkalender/core/model"
	"github.com/hochfrequenz/fristenkalender/core/workday"
)

// anchorCount is the number of month anchors evaluated per year, October
// year-1 through January year+1.
const anchorCount = 16

// Window is the half-open date range [Start, End) of a yearly calendar.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowFor returns [1 Dec year-1, 1 Feb year+1).
func WindowFor(year int) Window {
	return Window{
		Start: model.Date(year-1, time.December, 1),
		End:   model.Date(year+1, time.February, 1),
	}
}

// Contains reports whether t lies inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Anchors returns the first days of October year-1 through January year+1.
func Anchors(year int) []time.Time {
	out := make([]time.Time, 0, anchorCount)
	first := model.Date(year-1, time.October, 1)
	for i := 0; i < anchorCount; i++ {
		out = append(out, first.AddDate(0, i, 0))
	}
	return out
}

// assemble resolves spec for every anchor of year and keeps the Fristen
// inside the visible window. Forward labels count from the anchor's first
// day, backward labels from its last day.
func assemble(o workday.Oracle, year int, spec LabelSpec) ([]model.Frist, error) {
	w := WindowFor(year)
	var out []model.Frist
	for _, anchor := range Anchors(year) {
		var (
			d   time.Time
			err error
		)
		if spec.Backward {
			d, err = ResolveBackward(o, anchor.AddDate(0, 1, -1), spec.N)
		} else {
			d, err = ResolveForward(o, anchor, spec.N)
		}
		if err != nil {
			return nil, err
		}
		if !w.Contains(d) {
			continue
		}
		mm, err := mismatchFor(o, anchor, d)
		if err != nil {
			return nil, err
		}
		out = append(out, model.Frist{Date: d, Label: spec.Label, Mismatch: mm})
	}
	return out, nil
}
