package holiday

import "time"

// date is a comparable calendar-day key. The calendar day is taken from the
// location of the time value, no timezone conversion happens.
type date struct {
	year  int
	month time.Month
	day   int
}

func dateFromTime(t time.Time) date {
	y, m, d := t.Date()
	return date{year: y, month: m, day: d}
}

func (d date) toTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}
