package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hochfrequenz/fristenkalender/core/fristen"
	"github.com/hochfrequenz/fristenkalender/core/holiday"
	"github.com/hochfrequenz/fristenkalender/core/model"
)

func fixedExporter() *ICSExporter {
	e := NewICSExporter("")
	e.Now = func() time.Time { return time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC) }
	return e
}

func summaries(t *testing.T, cal *ics.Calendar) []string {
	t.Helper()
	var out []string
	for _, ev := range cal.Events() {
		out = append(out, ev.GetProperty(ics.ComponentPropertySummary).Value)
	}
	return out
}

func TestICSExporter_Write(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fixedExporter().Write(&buf, "fristen@example.com", sample))

	out := buf.String()
	assert.Contains(t, out, "PRODID:"+DefaultProductID)
	assert.Contains(t, out, "METHOD:REQUEST")

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 2)
	assert.Equal(t, []string{"42WT (★23)", "3LWT"}, summaries(t, cal))

	first := events[0]
	assert.Equal(t, sample[0].ID(), first.Id())
	assert.Equal(t, "20221205", first.GetProperty(ics.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20221206", first.GetProperty(ics.ComponentPropertyDtEnd).Value)
	assert.Equal(t, "42. Werktag ab Beginn von Oktober 2022", first.GetProperty(ics.ComponentPropertyDescription).Value)
	require.Len(t, first.Attendees(), 1)
	assert.Equal(t, "fristen@example.com", first.Attendees()[0].Email())

	assert.Equal(t, "GPKE: Anmeldung", events[1].GetProperty(ics.ComponentPropertyDescription).Value)
}

func TestICSExporter_StableUIDs(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, fixedExporter().Write(&a, "", sample))
	require.NoError(t, fixedExporter().Write(&b, "", sample))
	assert.Equal(t, a.String(), b.String())
	assert.NotContains(t, a.String(), "ATTENDEE")
}

func TestICSExporter_ExportCalendarForType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "gpke.ics")
	require.NoError(t, fixedExporter().ExportCalendarForType(path, "a@b.de", sample, model.FristenTypeGPKE))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cal, err := ics.ParseCalendar(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"3LWT"}, summaries(t, cal))
}

func TestGenerateAndExportWholeCalendar(t *testing.T) {
	g := fristen.NewGenerator(holiday.NewBDEW())
	e := fixedExporter()

	path := filepath.Join(t.TempDir(), "fristen_2023.ics")
	require.NoError(t, e.GenerateAndExportWholeCalendar(g, path, "a@b.de", 2023))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, cal.Events(), 197)

	path = filepath.Join(t.TempDir(), "gpke_2025.ics")
	require.NoError(t, e.GenerateAndExportTypeCalendar(g, path, "a@b.de", 2025, model.FristenTypeGPKE))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	cal, err = ics.ParseCalendar(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, cal.Events(), 14)
}

func TestICSExporter_DescriptionFallback(t *testing.T) {
	// no text exists for 7WT: event without description
	cal, err := fixedExporter().Calendar("", []model.Frist{{Date: model.Date(2023, time.March, 9), Label: "7WT"}})
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)
	assert.Nil(t, cal.Events()[0].GetProperty(ics.ComponentPropertyDescription))

	var buf bytes.Buffer
	err = fixedExporter().Write(&buf, "", []model.Frist{
		{Date: model.Date(2023, time.March, 31), Label: "LWT", Type: model.FristenType("NOPE")},
	})
	assert.ErrorIs(t, err, fristen.ErrUnknownFristenType)
}
