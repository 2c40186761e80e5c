package model

import "time"

var monthNames = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

var weekdayAbbrevs = [...]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

// MonthName returns the German name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// WeekdayAbbrev returns the German two-letter abbreviation of wd.
func WeekdayAbbrev(wd time.Weekday) string {
	return weekdayAbbrevs[wd]
}
