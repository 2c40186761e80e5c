package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/hochfrequenz/fristenkalender/core/model"
)

// Record is the serialised form of a Frist.
type Record struct {
	Date           string            `json:"date"`
	Label          string            `json:"label"`
	Summary        string            `json:"summary"`
	ReferenceMonth int               `json:"reference_month,omitempty"`
	WorkingDays    int               `json:"working_days,omitempty"`
	Description    string            `json:"description,omitempty"`
	Type           model.FristenType `json:"type,omitempty"`
}

// NewRecord converts f.
func NewRecord(f model.Frist) Record {
	return Record{
		Date:           f.Date.Format("2006-01-02"),
		Label:          f.Label,
		Summary:        f.Summary(),
		ReferenceMonth: int(f.Mismatch.ReferenceMonth),
		WorkingDays:    f.Mismatch.WorkingDays,
		Description:    f.Description,
		Type:           f.Type,
	}
}

// WriteJSON writes the Fristen to w as a JSON array.
func WriteJSON(w io.Writer, fristen []model.Frist) error {
	recs := make([]Record, len(fristen))
	for i, f := range fristen {
		recs[i] = NewRecord(f)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}

// WriteCSV writes the Fristen to w in CSV format with a header row.
func WriteCSV(w io.Writer, fristen []model.Frist) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "label", "summary", "reference_month", "working_days", "type", "description"}); err != nil {
		return err
	}
	for _, f := range fristen {
		r := NewRecord(f)
		ref, wd := "", ""
		if !f.Mismatch.IsZero() {
			ref = strconv.Itoa(r.ReferenceMonth)
			wd = strconv.Itoa(r.WorkingDays)
		}
		rec := []string{r.Date, r.Label, r.Summary, ref, wd, string(r.Type), r.Description}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
