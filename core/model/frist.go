package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// idNamespace scopes the name based identifiers of Fristen.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://www.bdew.de/fristenkalender"))

// Frist is a single deadline of the Fristenkalender. Values are created by the
// generator and never mutated afterwards.
type Frist struct {
	Date        time.Time   // midnight UTC
	Label       string      // e.g. "5WT", "LWT", "3LWT"
	Mismatch    Mismatch    // zero value when Date lies in the reference month
	Description string      // optional human readable text
	Type        FristenType // empty unless generated for a process type
}

// Mismatch describes a Frist whose date left the month it was counted from.
type Mismatch struct {
	// ReferenceMonth is the nominal month the label was counted in.
	ReferenceMonth time.Month
	// WorkingDays is the signed distance in working days: positive values
	// count working days after the end of the reference month, negative values
	// working days before its first day.
	WorkingDays int
}

// IsZero reports whether no mismatch was recorded.
func (m Mismatch) IsZero() bool { return m.ReferenceMonth == 0 }

// Date returns the given calendar day at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day truncates t to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// SameKey reports whether both Fristen share date and label.
func (f Frist) SameKey(o Frist) bool {
	return f.Label == o.Label && f.Date.Equal(o.Date)
}

// Summary renders the label the way it appears in the calendar, e.g. "42WT (★23)".
func (f Frist) Summary() string {
	if f.Mismatch.IsZero() {
		return f.Label
	}
	return fmt.Sprintf("%s (★%d)", f.Label, f.Mismatch.WorkingDays)
}

func (f Frist) String() string {
	return f.Date.Format("2006-01-02") + " " + f.Summary()
}

// ID returns a stable identifier derived from date, label and type. Calendar
// exports and reminders use it so that re-exports update instead of duplicate.
func (f Frist) ID() string {
	name := f.Date.Format("2006-01-02") + "|" + f.Label + "|" + string(f.Type)
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}
