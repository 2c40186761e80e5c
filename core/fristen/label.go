package fristen

import (
	"regexp"
	"strconv"
)

var labelPattern = regexp.MustCompile(`^([1-9][0-9]*)?(L?)WT$`)

// LabelOffset pairs a working-day offset with its label, e.g. {3, "3LWT"}.
type LabelOffset struct {
	N     int
	Label string
}

// LabelSpec is a parsed label.
type LabelSpec struct {
	N        int
	Label    string
	Backward bool
}

// CanonicalLabels are the Fristen of the full calendar in their tie-break order.
var CanonicalLabels = []LabelOffset{
	{5, "5WT"},
	{10, "10WT"},
	{12, "12WT"},
	{14, "14WT"},
	{16, "16WT"},
	{17, "17WT"},
	{18, "18WT"},
	{20, "20WT"},
	{21, "21WT"},
	{26, "26WT"},
	{30, "30WT"},
	{42, "42WT"},
	{0, "LWT"},
	{3, "3LWT"},
}

var canonicalRank = func() map[string]int {
	m := make(map[string]int, len(CanonicalLabels))
	for i, l := range CanonicalLabels {
		m[l.Label] = i
	}
	return m
}()

// ParseLabel parses "<N>WT", "LWT" or "<N>LWT". Forward labels need N >= 1.
func ParseLabel(label string) (LabelSpec, error) {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil {
		return LabelSpec{}, &LabelError{Label: label}
	}
	backward := m[2] == "L"
	n := 0
	if m[1] != "" {
		var err error
		if n, err = strconv.Atoi(m[1]); err != nil {
			return LabelSpec{}, &LabelError{Label: label, Reason: err.Error()}
		}
	}
	if !backward && n == 0 {
		return LabelSpec{}, &LabelError{Label: label, Reason: "forward labels need an offset"}
	}
	return LabelSpec{N: n, Label: label, Backward: backward}, nil
}

// specFor parses label and checks that it agrees with n.
func specFor(n int, label string) (LabelSpec, error) {
	spec, err := ParseLabel(label)
	if err != nil {
		return LabelSpec{}, err
	}
	if spec.N != n {
		return LabelSpec{}, &LabelError{Label: label, Reason: "offset " + strconv.Itoa(n) + " does not match"}
	}
	return spec, nil
}

// labelLess orders labels on the same day: canonical labels first in
// canonical order, then forward before backward, then by offset.
func labelLess(a, b string) bool {
	ra, aok := canonicalRank[a]
	rb, bok := canonicalRank[b]
	switch {
	case aok && bok:
		return ra < rb
	case aok != bok:
		return aok
	}
	sa, errA := ParseLabel(a)
	sb, errB := ParseLabel(b)
	if errA != nil || errB != nil {
		return a < b
	}
	if sa.Backward != sb.Backward {
		return !sa.Backward
	}
	if sa.N != sb.N {
		return sa.N < sb.N
	}
	return a < b
}
