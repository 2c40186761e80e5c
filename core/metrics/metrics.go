package metrics

import (
	"time"

	"github.com/hochfrequenz/fristenkalender/core/model"
)

// GenerationEvent describes one completed generator call.
type GenerationEvent struct {
	Year     int
	Type     model.FristenType // empty for untyped calls
	Labels   int               // number of label definitions evaluated
	Count    int               // number of Fristen returned
	Duration time.Duration
	Failed   bool
	Time     time.Time // start of the call
}

// Sink records generation events for observability purposes.
type Sink interface {
	RecordGeneration(ev GenerationEvent) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordGeneration(GenerationEvent) error { return nil }

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordGeneration forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordGeneration(ev GenerationEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordGeneration(ev); err != nil {
			return err
		}
	}
	return nil
}
