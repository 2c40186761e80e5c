package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hochfrequenz/fristenkalender/core/fristen"
	"github.com/hochfrequenz/fristenkalender/core/holiday"
)

func TestCalendarDays(t *testing.T) {
	cal := holiday.NewBDEW()
	list, err := fristen.NewGenerator(cal).GenerateAllFristen(2024)
	require.NoError(t, err)

	days, err := CalendarDays(2024, list, cal)
	require.NoError(t, err)
	// 1 Dec 2023 through 31 Jan 2025
	assert.Len(t, days, 31+366+31)

	d := days["01.02.2024"]
	assert.Equal(t, "01.02.2024", d.Datum)
	assert.Equal(t, "Do", d.Wochentag)
	assert.Nil(t, d.FeiertagsName)
	assert.Equal(t, []string{"42WT"}, d.Fristen)

	d = days["01.12.2023"]
	assert.Equal(t, "Fr", d.Wochentag)
	assert.Equal(t, []string{"21WT"}, d.Fristen)

	d = days["24.12.2023"]
	assert.Equal(t, "So", d.Wochentag)
	require.NotNil(t, d.FeiertagsName)
	assert.Equal(t, "Heiligabend", *d.FeiertagsName)
	assert.Nil(t, d.Fristen)

	d = days["01.01.2024"]
	assert.Equal(t, "Mo", d.Wochentag)
	require.NotNil(t, d.FeiertagsName)
	assert.Equal(t, "Neujahr", *d.FeiertagsName)
	assert.Nil(t, d.Fristen)

	_, ok := days["30.11.2023"]
	assert.False(t, ok)
	_, ok = days["01.02.2025"]
	assert.False(t, ok)
}

func TestWriteDays(t *testing.T) {
	cal := holiday.NewBDEW()
	days, err := CalendarDays(2024, nil, cal)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDays(&buf, days))

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	entry := raw["02.01.2024"]
	require.NotNil(t, entry)
	assert.Nil(t, entry["feiertags_name"])
	assert.Nil(t, entry["fristen"])
	assert.Equal(t, "Di", entry["wochentag"])
}
