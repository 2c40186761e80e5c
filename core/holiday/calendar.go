// Package holiday implements the BDEW working-day calendar used to count
// Werktage. Holiday rules are data (see bdew.yaml) and can be replaced by a
// custom ruleset without touching the Fristen engine.
package holiday

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hochfrequenz/fristenkalender/core/workday"
)

// Default range of years for which the calendar answers queries.
const (
	DefaultMinYear = 1990
	DefaultMaxYear = 2100
)

// maxStep bounds the search for the next or previous working day.
const maxStep = 366

// Holiday is a single resolved holiday.
type Holiday struct {
	Date time.Time // midnight UTC
	Name string
}

// Calendar answers working-day questions for a ruleset. It implements
// workday.Oracle and is safe for concurrent use.
type Calendar struct {
	rules   []Rule
	minYear int
	maxYear int

	mu    sync.RWMutex
	years map[int]map[date]string
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithYearRange limits the years for which data is considered available.
func WithYearRange(minYear, maxYear int) Option {
	return func(c *Calendar) {
		c.minYear = minYear
		c.maxYear = maxYear
	}
}

// New creates a Calendar from rs.
func New(rs Ruleset, opts ...Option) (*Calendar, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	c := &Calendar{
		rules:   rs.Rules,
		minYear: DefaultMinYear,
		maxYear: DefaultMaxYear,
		years:   make(map[int]map[date]string),
	}
	for _, o := range opts {
		o(c)
	}
	if c.minYear > c.maxYear {
		return nil, fmt.Errorf("invalid year range %d-%d", c.minYear, c.maxYear)
	}
	return c, nil
}

// NewBDEW creates a Calendar backed by the built-in BDEW ruleset.
func NewBDEW(opts ...Option) *Calendar {
	c, err := New(BDEWRuleset(), opts...)
	if err != nil {
		panic(err)
	}
	return c
}

var _ workday.Oracle = (*Calendar)(nil)

// holidays returns the resolved holidays of year, computing them once.
func (c *Calendar) holidays(year int) (map[date]string, error) {
	if year < c.minYear || year > c.maxYear {
		return nil, &workday.RangeError{Year: year, Min: c.minYear, Max: c.maxYear}
	}
	c.mu.RLock()
	h, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return h, nil
	}

	h = make(map[date]string)
	for _, r := range c.rules {
		if !r.appliesTo(year) {
			continue
		}
		d := r.dateIn(year)
		if _, dup := h[d]; !dup {
			h[d] = r.Name
		}
	}
	c.mu.Lock()
	if existing, ok := c.years[year]; ok {
		h = existing
	} else {
		c.years[year] = h
	}
	c.mu.Unlock()
	return h, nil
}

// HolidayName returns the name of the holiday on t, if any.
func (c *Calendar) HolidayName(t time.Time) (string, bool, error) {
	d := dateFromTime(t)
	h, err := c.holidays(d.year)
	if err != nil {
		return "", false, err
	}
	name, ok := h[d]
	return name, ok, nil
}

// IsHoliday reports whether t is a holiday.
func (c *Calendar) IsHoliday(t time.Time) (bool, error) {
	_, ok, err := c.HolidayName(t)
	return ok, err
}

// IsWorkingDay reports whether t is neither a weekend day nor a holiday.
func (c *Calendar) IsWorkingDay(t time.Time) (bool, error) {
	holiday, err := c.IsHoliday(t)
	if err != nil {
		return false, err
	}
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false, nil
	}
	return !holiday, nil
}

// PreviousWorkingDay returns the closest working day strictly before t.
func (c *Calendar) PreviousWorkingDay(t time.Time) (time.Time, error) {
	return c.step(t, -1)
}

// NextWorkingDay returns the closest working day strictly after t.
func (c *Calendar) NextWorkingDay(t time.Time) (time.Time, error) {
	return c.step(t, 1)
}

func (c *Calendar) step(t time.Time, dir int) (time.Time, error) {
	cur := dateFromTime(t).toTime()
	for i := 0; i < maxStep; i++ {
		cur = cur.AddDate(0, 0, dir)
		ok, err := c.IsWorkingDay(cur)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			return cur, nil
		}
	}
	return time.Time{}, fmt.Errorf("no working day within %d days of %s", maxStep, t.Format("2006-01-02"))
}

// NthWorkingDayOfMonth returns the n-th working day counted from monthStart.
func (c *Calendar) NthWorkingDayOfMonth(n int, monthStart time.Time) (time.Time, error) {
	return workday.NthWorkingDayOfMonth(c, n, monthStart)
}

// HolidaysInYear returns all holidays of year sorted by date.
func (c *Calendar) HolidaysInYear(year int) ([]Holiday, error) {
	h, err := c.holidays(year)
	if err != nil {
		return nil, err
	}
	keys := make([]date, 0, len(h))
	for d := range h {
		keys = append(keys, d)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })
	out := make([]Holiday, 0, len(keys))
	for _, d := range keys {
		out = append(out, Holiday{Date: d.toTime(), Name: h[d]})
	}
	return out, nil
}
