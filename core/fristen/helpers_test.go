package fristen

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hochfrequenz/fristenkalender/core/holiday"
	"github.com/hochfrequenz/fristenkalender/core/metrics"
	"github.com/hochfrequenz/fristenkalender/core/model"
)

func d(y int, m time.Month, day int) time.Time { return model.Date(y, m, day) }

var bdew = holiday.NewBDEW()

// fakeOracle treats weekends and the listed days as non-working.
type fakeOracle struct {
	off map[time.Time]bool
}

func offRange(from, to time.Time) map[time.Time]bool {
	m := map[time.Time]bool{}
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		m[cur] = true
	}
	return m
}

func (f fakeOracle) IsWorkingDay(t time.Time) (bool, error) {
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false, nil
	}
	return !f.off[model.Day(t)], nil
}

func (f fakeOracle) PreviousWorkingDay(t time.Time) (time.Time, error) {
	cur := model.Day(t)
	for {
		cur = cur.AddDate(0, 0, -1)
		if ok, _ := f.IsWorkingDay(cur); ok {
			return cur, nil
		}
	}
}

func (f fakeOracle) NextWorkingDay(t time.Time) (time.Time, error) {
	cur := model.Day(t)
	for {
		cur = cur.AddDate(0, 0, 1)
		if ok, _ := f.IsWorkingDay(cur); ok {
			return cur, nil
		}
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []metrics.GenerationEvent
}

func (r *recordingSink) RecordGeneration(ev metrics.GenerationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func loadReference(t *testing.T, path string) []model.Frist {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []model.Frist
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		require.Len(t, parts, 2, line)
		day, err := time.Parse("2006-01-02", parts[0])
		require.NoError(t, err)
		out = append(out, model.Frist{Date: day, Label: parts[1]})
	}
	require.NoError(t, sc.Err())
	return out
}

func keys(fristen []model.Frist) []string {
	out := make([]string, len(fristen))
	for i, f := range fristen {
		out[i] = f.Date.Format("2006-01-02") + " " + f.Label
	}
	return out
}

func containsFrist(fristen []model.Frist, date time.Time, label string) bool {
	for _, f := range fristen {
		if f.Date.Equal(date) && f.Label == label {
			return true
		}
	}
	return false
}
