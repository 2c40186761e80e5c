package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingSink struct {
	n   int
	err error
}

func (c *countingSink) RecordGeneration(GenerationEvent) error {
	c.n++
	return c.err
}

func TestMultiSink(t *testing.T) {
	a, b := &countingSink{}, &countingSink{}
	m := NewMultiSink(a, b)
	assert.NoError(t, m.RecordGeneration(GenerationEvent{Year: 2024}))
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 1, b.n)

	boom := errors.New("boom")
	failing := &countingSink{err: boom}
	c := &countingSink{}
	m = NewMultiSink(failing, c)
	assert.ErrorIs(t, m.RecordGeneration(GenerationEvent{}), boom)
	assert.Equal(t, 0, c.n)
}

func TestConfig(t *testing.T) {
	var c Config
	c.SetDefaults()
	assert.Equal(t, ":9090", c.PrometheusPort)
	assert.NoError(t, c.Validate())

	c.InfluxEnabled = true
	assert.Error(t, c.Validate())
	c.InfluxURL = "http://localhost:8086"
	c.InfluxOrg = "bdew"
	assert.NoError(t, c.Validate())
}
