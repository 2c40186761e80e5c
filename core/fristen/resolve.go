package fristen

import (
	"fmt"
	"time"

	"github.com/hochfrequenz/fristenkalender/core/model"
	"github.com/hochfrequenz/fristenkalender/core/workday"
)

// ResolveForward returns the n-th working day counted from monthStart. The
// first day of the month counts if it is a working day.
func ResolveForward(o workday.Oracle, monthStart time.Time, n int) (time.Time, error) {
	if n < 1 {
		return time.Time{}, fmt.Errorf("forward offset must be >= 1, got %d", n)
	}
	return workday.NthWorkingDayOfMonth(o, n, monthStart)
}

// ResolveBackward counts n positions backward from monthEnd, the last calendar
// day of a month. n = 0 yields the last working day on or before monthEnd.
//
// The last calendar day always occupies one position: if it is a working day
// it is consumed by the first step, otherwise it is counted before stepping.
func ResolveBackward(o workday.Oracle, monthEnd time.Time, n int) (time.Time, error) {
	if n < 0 {
		return time.Time{}, fmt.Errorf("backward offset must be >= 0, got %d", n)
	}
	cur, err := o.PreviousWorkingDay(monthEnd.AddDate(0, 0, 1))
	if err != nil {
		return time.Time{}, err
	}
	pos := 0
	if !cur.Equal(model.Day(monthEnd)) {
		pos = 1
	}
	for ; pos < n; pos++ {
		if cur, err = o.PreviousWorkingDay(cur); err != nil {
			return time.Time{}, err
		}
	}
	return cur, nil
}

// mismatchFor compares date with the month starting at anchor.
func mismatchFor(o workday.Oracle, anchor, date time.Time) (model.Mismatch, error) {
	if date.Year() == anchor.Year() && date.Month() == anchor.Month() {
		return model.Mismatch{}, nil
	}
	monthEnd := anchor.AddDate(0, 1, -1)
	if date.After(monthEnd) {
		n, err := workday.CountBetween(o, monthEnd.AddDate(0, 0, 1), date)
		if err != nil {
			return model.Mismatch{}, err
		}
		return model.Mismatch{ReferenceMonth: anchor.Month(), WorkingDays: n}, nil
	}
	n, err := workday.CountBetween(o, date, anchor.AddDate(0, 0, -1))
	if err != nil {
		return model.Mismatch{}, err
	}
	return model.Mismatch{ReferenceMonth: anchor.Month(), WorkingDays: -n}, nil
}
