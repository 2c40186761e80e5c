// Package notify selects upcoming Fristen and hands them to a Publisher.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/hochfrequenz/fristenkalender/core/fristen"
	"github.com/hochfrequenz/fristenkalender/core/logger"
	"github.com/hochfrequenz/fristenkalender/core/model"
)

// DefaultHorizonDays is used when no horizon is configured.
const DefaultHorizonDays = 7

// Reminder is the message published for an upcoming Frist.
type Reminder struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	Label       string            `json:"label"`
	Summary     string            `json:"summary"`
	Description string            `json:"description,omitempty"`
	Type        model.FristenType `json:"type,omitempty"`
	DaysLeft    int               `json:"days_left"`
}

// Publisher delivers reminders, e.g. over MQTT.
type Publisher interface {
	PublishReminder(ctx context.Context, r Reminder) error
}

// Generator is the subset of *fristen.Generator the notifier needs.
type Generator interface {
	GenerateAllFristen(year int) ([]model.Frist, error)
	GenerateFristenForType(year int, t model.FristenType) ([]model.Frist, error)
}

// Notifier publishes a reminder for every Frist within the horizon.
type Notifier struct {
	gen     Generator
	pub     Publisher
	horizon int
	types   []model.FristenType
	log     logger.Logger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithHorizon sets the number of days to look ahead.
func WithHorizon(days int) Option {
	return func(n *Notifier) {
		if days >= 0 {
			n.horizon = days
		}
	}
}

// WithTypes restricts reminders to the given process types. Without types all
// canonical Fristen are considered.
func WithTypes(types ...model.FristenType) Option {
	return func(n *Notifier) { n.types = append([]model.FristenType(nil), types...) }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.log = l
		}
	}
}

// New creates a Notifier.
func New(gen Generator, pub Publisher, opts ...Option) *Notifier {
	n := &Notifier{gen: gen, pub: pub, horizon: DefaultHorizonDays, log: logger.Nop{}}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Upcoming returns reminders for Fristen dated from the day of now up to and
// including horizon days later, ordered by date.
func (n *Notifier) Upcoming(now time.Time) ([]Reminder, error) {
	today := model.Day(now)
	end := today.AddDate(0, 0, n.horizon)

	var all []model.Frist
	for year := today.Year(); year <= end.Year(); year++ {
		list, err := n.collect(year)
		if err != nil {
			return nil, err
		}
		all = append(all, list...)
	}

	seen := make(map[string]bool)
	var selected []model.Frist
	for _, f := range all {
		if f.Date.Before(today) || f.Date.After(end) {
			continue
		}
		id := f.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		selected = append(selected, f)
	}
	sort.SliceStable(selected, func(i, j int) bool { return selected[i].Date.Before(selected[j].Date) })

	out := make([]Reminder, len(selected))
	for i, f := range selected {
		out[i] = Reminder{
			ID:          f.ID(),
			Date:        f.Date.Format("2006-01-02"),
			Label:       f.Label,
			Summary:     f.Summary(),
			Description: f.Description,
			Type:        f.Type,
			DaysLeft:    int(f.Date.Sub(today).Hours() / 24),
		}
	}
	return out, nil
}

func (n *Notifier) collect(year int) ([]model.Frist, error) {
	if len(n.types) == 0 {
		list, err := n.gen.GenerateAllFristen(year)
		if err != nil {
			return nil, fmt.Errorf("generate %d: %w", year, err)
		}
		for i := range list {
			desc, err := fristen.DescribeFrist(list[i])
			if err != nil && !errors.Is(err, fristen.ErrUnknownDescriptionKey) {
				return nil, fmt.Errorf("describe %s: %w", list[i], err)
			}
			list[i].Description = desc
		}
		return list, nil
	}
	var out []model.Frist
	for _, t := range n.types {
		list, err := n.gen.GenerateFristenForType(year, t)
		if err != nil {
			return nil, fmt.Errorf("generate %d for %s: %w", year, t, err)
		}
		out = append(out, list...)
	}
	return out, nil
}

// Run publishes all upcoming reminders and returns how many were sent. It
// stops at the first publish error.
func (n *Notifier) Run(ctx context.Context, now time.Time) (int, error) {
	reminders, err := n.Upcoming(now)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, r := range reminders {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if err := n.pub.PublishReminder(ctx, r); err != nil {
			n.log.Errorf("publish reminder %s (%s %s): %v", r.ID, r.Date, r.Label, err)
			return sent, err
		}
		sent++
	}
	n.log.Infof("published %d reminders for the next %d days", sent, n.horizon)
	return sent, nil
}
