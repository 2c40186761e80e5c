package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hochfrequenz/fristenkalender/config"
	"github.com/hochfrequenz/fristenkalender/core/model"
	"github.com/hochfrequenz/fristenkalender/core/notify"
	"github.com/hochfrequenz/fristenkalender/core/workday"
)

func TestNew_Defaults(t *testing.T) {
	svc, err := New(config.Default())
	require.NoError(t, err)
	defer svc.Close()

	list, err := svc.Generator.GenerateAllFristen(2023)
	require.NoError(t, err)
	assert.Len(t, list, 197)
}

func TestNew_HolidaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	rules := `name: test
rules:
  - name: Neujahr
    kind: fixed
    month: 1
    day: 1
`
	require.NoError(t, os.WriteFile(path, []byte(rules), 0o644))
	cfg := config.Default()
	cfg.Calendar.HolidaysFile = path
	cfg.Calendar.MinYear, cfg.Calendar.MaxYear = 2020, 2030

	svc, err := New(cfg)
	require.NoError(t, err)
	ok, err := svc.Calendar.IsWorkingDay(model.Date(2024, time.May, 1))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.Generator.GenerateAllFristen(2031)
	assert.ErrorIs(t, err, workday.ErrCalendarDataUnavailable)

	cfg.Calendar.HolidaysFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	svc, err := New(config.Default())
	require.NoError(t, err)

	srv := httptest.NewServer(svc.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/fristen?year=2024&type=GPKE")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"2024-12-23"`)
}

func TestServe_StopsOnCancel(t *testing.T) {
	svc, err := New(config.Default())
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx, l) }()

	resp, err := http.Get("http://" + l.Addr().String() + "/api/holidays?year=2024")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

type collectPublisher struct{ got []notify.Reminder }

func (c *collectPublisher) PublishReminder(_ context.Context, r notify.Reminder) error {
	c.got = append(c.got, r)
	return nil
}

func TestNotifier(t *testing.T) {
	cfg := config.Default()
	cfg.Notify.Types = []string{"GPKE"}
	cfg.Notify.HorizonDays = 10
	svc, err := New(cfg)
	require.NoError(t, err)

	pub := &collectPublisher{}
	n, err := svc.Notifier(pub)
	require.NoError(t, err)
	sent, err := n.Run(context.Background(), model.Date(2024, time.December, 20))
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, "2024-12-23", pub.got[0].Date)
}
