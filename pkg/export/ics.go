package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/hochfrequenz/fristenkalender/core/fristen"
	"github.com/hochfrequenz/fristenkalender/core/model"
)

// DefaultProductID identifies the generator in exported calendars.
const DefaultProductID = "-//Hochfrequenz//Fristenkalender//DE"

// ICSExporter turns Fristen into iCalendar files with one all-day event each.
type ICSExporter struct {
	ProductID string
	// Now stamps CREATED and DTSTAMP; defaults to time.Now.
	Now func() time.Time
}

// NewICSExporter returns an exporter using productID, or DefaultProductID if empty.
func NewICSExporter(productID string) *ICSExporter {
	if productID == "" {
		productID = DefaultProductID
	}
	return &ICSExporter{ProductID: productID, Now: time.Now}
}

// Calendar builds the calendar. Each event carries the Frist summary, its
// description and attendee as a required participant.
func (e *ICSExporter) Calendar(attendee string, list []model.Frist) (*ics.Calendar, error) {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	stamp := now().UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId(e.ProductID)
	for _, f := range list {
		ev := cal.AddEvent(f.ID())
		ev.SetCreatedTime(stamp)
		ev.SetDtStampTime(stamp)
		ev.SetAllDayStartAt(f.Date)
		ev.SetAllDayEndAt(f.Date.AddDate(0, 0, 1))
		ev.SetSummary(f.Summary())
		desc, err := description(f)
		if err != nil {
			return nil, fmt.Errorf("describe %s: %w", f, err)
		}
		if desc != "" {
			ev.SetDescription(desc)
		}
		if attendee != "" {
			ev.AddAttendee(attendee,
				ics.CalendarUserTypeIndividual,
				ics.ParticipationStatusNeedsAction,
				ics.ParticipationRoleReqParticipant,
				ics.WithRSVP(true))
		}
	}
	return cal, nil
}

// description falls back to the generated text. Labels without a text get
// none; any other failure is returned.
func description(f model.Frist) (string, error) {
	if f.Description != "" {
		return f.Description, nil
	}
	desc, err := fristen.DescribeFrist(f)
	if errors.Is(err, fristen.ErrUnknownDescriptionKey) {
		return "", nil
	}
	return desc, err
}

// Write serialises the calendar to w.
func (e *ICSExporter) Write(w io.Writer, attendee string, list []model.Frist) error {
	cal, err := e.Calendar(attendee, list)
	if err != nil {
		return err
	}
	return cal.SerializeTo(w)
}

// ExportCalendar writes the Fristen to the .ics file at path, creating parent
// directories as needed.
func (e *ICSExporter) ExportCalendar(path, attendee string, list []model.Frist) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := e.Write(f, attendee, list); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ExportCalendarForType writes only the Fristen tagged with t.
func (e *ICSExporter) ExportCalendarForType(path, attendee string, list []model.Frist, t model.FristenType) error {
	return e.ExportCalendar(path, attendee, FilterByType(list, t))
}

// FilterByType returns the Fristen whose type is t.
func FilterByType(list []model.Frist, t model.FristenType) []model.Frist {
	var out []model.Frist
	for _, f := range list {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

// Generator is the subset of *fristen.Generator used by the convenience exports.
type Generator interface {
	GenerateAllFristen(year int) ([]model.Frist, error)
	GenerateFristenForType(year int, t model.FristenType) ([]model.Frist, error)
}

// GenerateAndExportWholeCalendar generates the full calendar of year and writes it to path.
func (e *ICSExporter) GenerateAndExportWholeCalendar(g Generator, path, attendee string, year int) error {
	list, err := g.GenerateAllFristen(year)
	if err != nil {
		return err
	}
	return e.ExportCalendar(path, attendee, list)
}

// GenerateAndExportTypeCalendar generates the Fristen of t for year and writes them to path.
func (e *ICSExporter) GenerateAndExportTypeCalendar(g Generator, path, attendee string, year int, t model.FristenType) error {
	list, err := g.GenerateFristenForType(year, t)
	if err != nil {
		return err
	}
	return e.ExportCalendarForType(path, attendee, list, t)
}
