package holiday

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed bdew.yaml
var bdewRuleset []byte

// Rule kinds.
const (
	KindFixed         = "fixed"
	KindEaster        = "easter"
	KindWeekdayBefore = "weekday_before"
)

// Rule describes one holiday. Rules are versioned by year through FromYear
// and ToYear; a zero bound is open.
type Rule struct {
	Name     string `yaml:"name" json:"name"`
	Kind     string `yaml:"kind" json:"kind"`
	Month    int    `yaml:"month,omitempty" json:"month,omitempty"`
	Day      int    `yaml:"day,omitempty" json:"day,omitempty"`
	Offset   int    `yaml:"offset,omitempty" json:"offset,omitempty"`
	Weekday  string `yaml:"weekday,omitempty" json:"weekday,omitempty"`
	FromYear int    `yaml:"from_year,omitempty" json:"from_year,omitempty"`
	ToYear   int    `yaml:"to_year,omitempty" json:"to_year,omitempty"`
}

// Ruleset is a named list of holiday rules.
type Ruleset struct {
	Name  string `yaml:"name" json:"name"`
	Rules []Rule `yaml:"rules" json:"rules"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Validate checks every rule for consistent fields.
func (r Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule name is required")
	}
	if r.FromYear != 0 && r.ToYear != 0 && r.FromYear > r.ToYear {
		return fmt.Errorf("rule %s: from_year > to_year", r.Name)
	}
	switch r.Kind {
	case KindFixed, KindWeekdayBefore:
		if r.Month < 1 || r.Month > 12 {
			return fmt.Errorf("rule %s: month %d out of range", r.Name, r.Month)
		}
		if r.Day < 1 || r.Day > 31 {
			return fmt.Errorf("rule %s: day %d out of range", r.Name, r.Day)
		}
		if r.Kind == KindWeekdayBefore {
			if _, ok := weekdays[strings.ToLower(r.Weekday)]; !ok {
				return fmt.Errorf("rule %s: unknown weekday %q", r.Name, r.Weekday)
			}
		}
	case KindEaster:
	default:
		return fmt.Errorf("rule %s: unknown kind %q", r.Name, r.Kind)
	}
	return nil
}

// appliesTo reports whether the rule is in force in year.
func (r Rule) appliesTo(year int) bool {
	if r.FromYear != 0 && year < r.FromYear {
		return false
	}
	if r.ToYear != 0 && year > r.ToYear {
		return false
	}
	return true
}

// dateIn returns the date of the holiday in year. The rule must be valid.
func (r Rule) dateIn(year int) date {
	switch r.Kind {
	case KindEaster:
		return dateFromTime(EasterSunday(year).AddDate(0, 0, r.Offset))
	case KindWeekdayBefore:
		wd := weekdays[strings.ToLower(r.Weekday)]
		t := time.Date(year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
		for t.Weekday() != wd {
			t = t.AddDate(0, 0, -1)
		}
		return dateFromTime(t)
	default:
		return date{year: year, month: time.Month(r.Month), day: r.Day}
	}
}

// Validate checks all rules.
func (rs Ruleset) Validate() error {
	if len(rs.Rules) == 0 {
		return fmt.Errorf("ruleset %q has no rules", rs.Name)
	}
	for _, r := range rs.Rules {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRuleset reads a YAML ruleset from r.
func DecodeRuleset(r io.Reader) (Ruleset, error) {
	var rs Ruleset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rs); err != nil {
		return Ruleset{}, fmt.Errorf("decode ruleset: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return Ruleset{}, err
	}
	return rs, nil
}

// LoadRuleset reads a YAML ruleset from path.
func LoadRuleset(path string) (Ruleset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, err
	}
	return DecodeRuleset(bytes.NewReader(b))
}

// BDEWRuleset returns the built-in BDEW ruleset.
func BDEWRuleset() Ruleset {
	rs, err := DecodeRuleset(bytes.NewReader(bdewRuleset))
	if err != nil {
		panic(fmt.Sprintf("embedded BDEW ruleset: %v", err))
	}
	return rs
}
