package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hochfrequenz/fristenkalender/core/model"
)

var sample = []model.Frist{
	{Date: model.Date(2022, time.December, 5), Label: "42WT", Mismatch: model.Mismatch{ReferenceMonth: time.October, WorkingDays: 23}},
	{Date: model.Date(2022, time.December, 28), Label: "3LWT", Type: model.FristenTypeGPKE, Description: "GPKE: Anmeldung"},
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample))

	var got []Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, Record{Date: "2022-12-05", Label: "42WT", Summary: "42WT (★23)", ReferenceMonth: 10, WorkingDays: 23}, got[0])
	assert.Equal(t, model.FristenTypeGPKE, got[1].Type)
	assert.NotContains(t, buf.String(), `"reference_month": 0`)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"date", "label", "summary", "reference_month", "working_days", "type", "description"}, rows[0])
	assert.Equal(t, []string{"2022-12-05", "42WT", "42WT (★23)", "10", "23", "", ""}, rows[1])
	assert.Equal(t, []string{"2022-12-28", "3LWT", "3LWT", "", "", "GPKE", "GPKE: Anmeldung"}, rows[2])
}
