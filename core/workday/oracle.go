package workday

import (
	"errors"
	"fmt"
	"time"
)

// ErrCalendarDataUnavailable is returned when the holiday calendar has no data
// for the requested date.
var ErrCalendarDataUnavailable = errors.New("calendar data unavailable")

// RangeError reports a year outside the supported calendar range.
type RangeError struct {
	Year int
	Min  int
	Max  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("calendar data unavailable for year %d (supported %d-%d)", e.Year, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrCalendarDataUnavailable }

// Oracle answers working-day questions. Implementations must be safe for
// concurrent use.
type Oracle interface {
	// IsWorkingDay reports whether the calendar day of t is a working day.
	IsWorkingDay(t time.Time) (bool, error)
	// PreviousWorkingDay returns the closest working day strictly before t.
	PreviousWorkingDay(t time.Time) (time.Time, error)
	// NextWorkingDay returns the closest working day strictly after t.
	NextWorkingDay(t time.Time) (time.Time, error)
}

// NthWorkingDayOfMonth returns the n-th working day counted from monthStart,
// where monthStart itself counts as the first one if it is a working day.
func NthWorkingDayOfMonth(o Oracle, n int, monthStart time.Time) (time.Time, error) {
	if n < 1 {
		return time.Time{}, fmt.Errorf("nth working day: n must be >= 1, got %d", n)
	}
	cur := monthStart
	ok, err := o.IsWorkingDay(cur)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		if cur, err = o.NextWorkingDay(cur); err != nil {
			return time.Time{}, err
		}
	}
	for i := 1; i < n; i++ {
		if cur, err = o.NextWorkingDay(cur); err != nil {
			return time.Time{}, err
		}
	}
	return cur, nil
}

// CountBetween returns the number of working days in [from, to]. It returns 0
// if to is before from.
func CountBetween(o Oracle, from, to time.Time) (int, error) {
	count := 0
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		ok, err := o.IsWorkingDay(cur)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}
