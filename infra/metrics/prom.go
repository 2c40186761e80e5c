package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/hochfrequenz/fristenkalender/core/metrics"
)

// PromSink records generator runs in Prometheus metrics.
type PromSink struct {
	generated *prometheus.CounterVec
	runs      *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewPromSink registers generation metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	generated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fristen_generated_total",
		Help: "Total number of Fristen returned by the generator",
	}, []string{"type"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fristen_generation_runs_total",
		Help: "Number of generator calls",
	}, []string{"type", "failed"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fristen_generation_duration_seconds",
		Help:    "Time spent generating a yearly calendar",
		Buckets: prometheus.DefBuckets,
	}, []string{"type"})

	if err := reg.Register(generated); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			generated = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{generated: generated, runs: runs, duration: duration}, nil
}

// RecordGeneration updates counters and the duration histogram.
func (s *PromSink) RecordGeneration(ev coremetrics.GenerationEvent) error {
	typ := typeLabel(ev)
	s.runs.WithLabelValues(typ, strconv.FormatBool(ev.Failed)).Inc()
	if ev.Failed {
		return nil
	}
	s.generated.WithLabelValues(typ).Add(float64(ev.Count))
	s.duration.WithLabelValues(typ).Observe(ev.Duration.Seconds())
	return nil
}

func typeLabel(ev coremetrics.GenerationEvent) string {
	if ev.Type == "" {
		return "all"
	}
	return string(ev.Type)
}
