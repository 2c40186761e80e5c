package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/hochfrequenz/fristenkalender/core/fristen"
	"github.com/hochfrequenz/fristenkalender/core/model"
)

// DayKeyLayout formats the keys of the day dictionary.
const DayKeyLayout = "02.01.2006"

// Day is one entry of the calendar-like dictionary used to print the yearly
// calendar. Nil pointers and slices serialise as null.
type Day struct {
	Datum         string   `json:"datum"`
	Wochentag     string   `json:"wochentag"`
	FeiertagsName *string  `json:"feiertags_name"`
	Fristen       []string `json:"fristen"`
}

// HolidayNamer names holidays; *holiday.Calendar implements it.
type HolidayNamer interface {
	HolidayName(t time.Time) (string, bool, error)
}

// CalendarDays returns an entry for every day of the window of year, keyed
// DD.MM.YYYY, with the labels of the Fristen falling on it.
func CalendarDays(year int, list []model.Frist, h HolidayNamer) (map[string]Day, error) {
	labels := make(map[time.Time][]string)
	for _, f := range list {
		d := model.Day(f.Date)
		labels[d] = append(labels[d], f.Label)
	}

	w := fristen.WindowFor(year)
	out := make(map[string]Day)
	for cur := w.Start; cur.Before(w.End); cur = cur.AddDate(0, 0, 1) {
		day := Day{
			Datum:     cur.Format(DayKeyLayout),
			Wochentag: model.WeekdayAbbrev(cur.Weekday()),
			Fristen:   labels[cur],
		}
		name, ok, err := h.HolidayName(cur)
		if err != nil {
			return nil, err
		}
		if ok {
			day.FeiertagsName = &name
		}
		out[day.Datum] = day
	}
	return out, nil
}

// WriteDays writes the dictionary as JSON.
func WriteDays(w io.Writer, days map[string]Day) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(days)
}
