package test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hochfrequenz/fristenkalender/app"
	"github.com/hochfrequenz/fristenkalender/config"
	"github.com/hochfrequenz/fristenkalender/pkg/export"
	"github.com/hochfrequenz/fristenkalender/test/util"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServiceEndToEnd(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.PrometheusEnabled = true
	cfg.Metrics.PrometheusPort = freeAddr(t)

	svc, err := app.New(cfg)
	require.NoError(t, err)
	defer svc.Close()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx, l) }()

	base := "http://" + l.Addr().String()
	waitCtx, waitCancel := context.WithTimeout(ctx, util.ServerTimeout)
	defer waitCancel()
	require.NoError(t, util.WaitForHTTP(waitCtx, base+"/healthz"))

	resp, err := http.Get(base + "/api/fristen?year=2023")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recs []export.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
	assert.Len(t, recs, 197)

	metricCtx, metricCancel := context.WithTimeout(ctx, util.MetricTimeout)
	defer metricCancel()
	require.NoError(t, util.WaitForMetric(metricCtx,
		"http://"+cfg.Metrics.PrometheusPort+"/metrics",
		`fristen_generated_total{type="all"} 197`))

	cancel()
	require.NoError(t, <-done)
}
