// Package fristen exposes generated Fristenkalender over HTTP.
package fristen

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	corefristen "github.com/hochfrequenz/fristenkalender/core/fristen"
	"github.com/hochfrequenz/fristenkalender/core/holiday"
	"github.com/hochfrequenz/fristenkalender/core/model"
	"github.com/hochfrequenz/fristenkalender/core/workday"
	"github.com/hochfrequenz/fristenkalender/pkg/export"
)

// Calendar is the holiday data the handlers need.
type Calendar interface {
	export.HolidayNamer
	HolidaysInYear(year int) ([]holiday.Holiday, error)
}

// Handler serves calendars generated by Gen.
type Handler struct {
	Gen      *corefristen.Generator
	Cal      Calendar
	ICS      *export.ICSExporter
	Attendee string
}

// Register mounts the endpoints on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("/api/fristen", h.Fristen())
	mux.Handle("/api/holidays", h.Holidays())
}

// Fristen handles GET /api/fristen?year=2024[&type=GPKE|&label=3LWT...][&format=json|csv|ics|days].
func (h *Handler) Fristen() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		year, err := parseYear(q.Get("year"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		format := q.Get("format")
		if format == "" {
			format = "json"
		}
		if format != "json" && format != "csv" && format != "ics" && format != "days" {
			http.Error(w, fmt.Sprintf("unknown format %q", format), http.StatusBadRequest)
			return
		}
		labels := q["label"]
		typ := q.Get("type")
		if typ != "" && len(labels) > 0 {
			http.Error(w, "type and label are mutually exclusive", http.StatusBadRequest)
			return
		}

		var list []model.Frist
		switch {
		case typ != "":
			t, perr := model.ParseFristenType(typ)
			if perr != nil {
				http.Error(w, perr.Error(), http.StatusBadRequest)
				return
			}
			list, err = h.Gen.GenerateFristenForType(year, t)
		case len(labels) > 0:
			offsets, perr := labelOffsets(labels)
			if perr != nil {
				http.Error(w, perr.Error(), http.StatusBadRequest)
				return
			}
			list, err = h.Gen.GenerateFristenSubset(year, offsets)
		default:
			list, err = h.Gen.GenerateAllFristen(year)
		}
		if err != nil {
			writeError(w, err)
			return
		}

		switch format {
		case "csv":
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			err = export.WriteCSV(w, list)
		case "ics":
			w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=fristenkalender_%d.ics", year))
			err = h.ICS.Write(w, h.Attendee, list)
		case "days":
			days, derr := export.CalendarDays(year, list, h.Cal)
			if derr != nil {
				writeError(w, derr)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			err = export.WriteDays(w, days)
		default:
			w.Header().Set("Content-Type", "application/json")
			err = export.WriteJSON(w, list)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

type holidayJSON struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// Holidays handles GET /api/holidays?year=2024.
func (h *Handler) Holidays() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		year, err := parseYear(r.URL.Query().Get("year"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		hols, err := h.Cal.HolidaysInYear(year)
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]holidayJSON, len(hols))
		for i, hd := range hols {
			out[i] = holidayJSON{Date: hd.Date.Format("2006-01-02"), Name: hd.Name}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func parseYear(s string) (int, error) {
	if s == "" {
		return 0, errors.New("year is required")
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}

func labelOffsets(labels []string) ([]corefristen.LabelOffset, error) {
	out := make([]corefristen.LabelOffset, 0, len(labels))
	for _, l := range labels {
		spec, err := corefristen.ParseLabel(l)
		if err != nil {
			return nil, err
		}
		out = append(out, corefristen.LabelOffset{N: spec.N, Label: spec.Label})
	}
	return out, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, workday.ErrCalendarDataUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, corefristen.ErrInvalidLabel), errors.Is(err, corefristen.ErrUnknownFristenType):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
