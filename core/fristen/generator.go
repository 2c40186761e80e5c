package fristen

import (
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hochfrequenz/fristenkalender/core/logger"
	"github.com/hochfrequenz/fristenkalender/core/metrics"
	"github.com/hochfrequenz/fristenkalender/core/model"
	"github.com/hochfrequenz/fristenkalender/core/workday"
)

// Generator builds Fristenkalender for single years. It holds no mutable
// state and may be used concurrently.
type Generator struct {
	oracle   workday.Oracle
	log      logger.Logger
	sink     metrics.Sink
	parallel bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for debug output.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithMetrics sets the sink receiving one event per generator call.
func WithMetrics(s metrics.Sink) Option {
	return func(g *Generator) {
		if s != nil {
			g.sink = s
		}
	}
}

// WithParallel resolves the label definitions concurrently.
func WithParallel(p bool) Option {
	return func(g *Generator) { g.parallel = p }
}

// NewGenerator creates a Generator counting working days with o.
func NewGenerator(o workday.Oracle, opts ...Option) *Generator {
	g := &Generator{oracle: o, log: logger.Nop{}, sink: metrics.NopSink{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateAllFristen returns the complete calendar of year: every canonical
// label, sorted by date and free of duplicates.
func (g *Generator) GenerateAllFristen(year int) ([]model.Frist, error) {
	return g.generate(year, "", CanonicalLabels)
}

// GenerateFristenForLabel returns all Fristen of one label in year. The label
// suffix selects forward ("WT") or backward ("LWT") counting and must agree
// with n.
func (g *Generator) GenerateFristenForLabel(year, n int, label string) ([]model.Frist, error) {
	return g.generate(year, "", []LabelOffset{{N: n, Label: label}})
}

// GenerateFristenSubset runs the full pipeline for the given labels only.
func (g *Generator) GenerateFristenSubset(year int, labels []LabelOffset) ([]model.Frist, error) {
	return g.generate(year, "", labels)
}

// GenerateFristenForType returns the Fristen relevant to process type t,
// tagged with the type and its description.
func (g *Generator) GenerateFristenForType(year int, t model.FristenType) ([]model.Frist, error) {
	labels, err := LabelsForType(t)
	if err != nil {
		return nil, err
	}
	fristen, err := g.generate(year, t, labels)
	if err != nil {
		return nil, err
	}
	for i := range fristen {
		fristen[i].Type = t
		desc, err := DescribeFrist(fristen[i])
		if err != nil {
			return nil, err
		}
		fristen[i].Description = desc
	}
	return fristen, nil
}

func (g *Generator) generate(year int, t model.FristenType, labels []LabelOffset) (out []model.Frist, err error) {
	start := time.Now()
	defer func() {
		ev := metrics.GenerationEvent{
			Year:     year,
			Type:     t,
			Labels:   len(labels),
			Count:    len(out),
			Duration: time.Since(start),
			Failed:   err != nil,
			Time:     start,
		}
		if rerr := g.sink.RecordGeneration(ev); rerr != nil {
			g.log.Warnf("record generation metrics: %v", rerr)
		}
	}()

	specs := make([]LabelSpec, len(labels))
	for i, l := range labels {
		if specs[i], err = specFor(l.N, l.Label); err != nil {
			return nil, err
		}
	}

	parts := make([][]model.Frist, len(specs))
	resolve := func(i int) error {
		res, err := assemble(g.oracle, year, specs[i])
		if err != nil {
			return err
		}
		parts[i] = res
		g.log.Debugw("resolved label", map[string]any{"year": year, "label": specs[i].Label, "count": len(res)})
		return nil
	}
	if g.parallel && len(specs) > 1 {
		var eg errgroup.Group
		for i := range specs {
			i := i
			eg.Go(func() error { return resolve(i) })
		}
		err = eg.Wait()
	} else {
		for i := range specs {
			if err = resolve(i); err != nil {
				break
			}
		}
	}
	if err != nil {
		g.log.Errorf("generate fristen for %d: %v", year, err)
		return nil, err
	}

	var all []model.Frist
	for _, p := range parts {
		all = append(all, p...)
	}
	out = normalize(all)
	g.log.Infof("generated %d fristen for %d from %d labels", len(out), year, len(specs))
	return out, nil
}

// normalize sorts by date with the label tie-break and drops repeated
// (date, label) pairs.
func normalize(fristen []model.Frist) []model.Frist {
	sort.SliceStable(fristen, func(i, j int) bool {
		a, b := fristen[i], fristen[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return labelLess(a.Label, b.Label)
	})
	out := fristen[:0]
	for _, f := range fristen {
		if len(out) > 0 && out[len(out)-1].SameKey(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}
