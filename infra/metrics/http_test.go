package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/hochfrequenz/fristenkalender/core/metrics"
)

func TestHandlerExposesGenerationMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	_ = sink.RecordGeneration(coremetrics.GenerationEvent{Year: 2023, Count: 197, Duration: time.Millisecond})

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `fristen_generated_total{type="all"} 197`) {
		t.Errorf("metrics output missing counter:\n%s", body)
	}
}
