package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/hochfrequenz/fristenkalender/core/metrics"
	"github.com/hochfrequenz/fristenkalender/core/model"
)

func TestPromSink_RecordGeneration(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}

	events := []coremetrics.GenerationEvent{
		{Year: 2024, Count: 190, Duration: 3 * time.Millisecond},
		{Year: 2024, Type: model.FristenTypeGPKE, Count: 14, Duration: time.Millisecond},
		{Year: 2024, Type: model.FristenTypeGPKE, Failed: true},
	}
	for _, ev := range events {
		if err := sink.RecordGeneration(ev); err != nil {
			t.Fatalf("record error: %v", err)
		}
	}

	expected := `
# HELP fristen_generated_total Total number of Fristen returned by the generator
# TYPE fristen_generated_total counter
fristen_generated_total{type="GPKE"} 14
fristen_generated_total{type="all"} 190
`
	if err := testutil.CollectAndCompare(sink.generated, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if v := testutil.ToFloat64(sink.runs.WithLabelValues("GPKE", "true")); v != 1 {
		t.Errorf("failed runs = %v", v)
	}
	if c := testutil.CollectAndCount(sink.duration); c != 2 {
		t.Errorf("duration series = %d", c)
	}
}

func TestNewPromSinkWithRegistry_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.generated != second.generated {
		t.Errorf("expected the existing collector to be reused")
	}
}
