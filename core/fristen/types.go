package fristen

import (
	"fmt"

	"github.com/hochfrequenz/fristenkalender/core/model"
)

// typeLabels maps each process type to the labels it cares about.
var typeLabels = map[model.FristenType][]LabelOffset{
	model.FristenTypeGPKE: {
		{3, "3LWT"},
	},
	model.FristenTypeGeLiGas: {
		{0, "LWT"},
		{3, "3LWT"},
	},
	model.FristenTypeMaBiS: {
		{10, "10WT"},
		{12, "12WT"},
		{16, "16WT"},
		{18, "18WT"},
		{20, "20WT"},
		{26, "26WT"},
		{30, "30WT"},
		{42, "42WT"},
	},
	model.FristenTypeKoV: {
		{5, "5WT"},
		{12, "12WT"},
		{14, "14WT"},
		{17, "17WT"},
		{21, "21WT"},
	},
	model.FristenTypeWiM: {
		{5, "5WT"},
		{0, "LWT"},
	},
}

// LabelsForType returns a copy of the labels mapped to t.
func LabelsForType(t model.FristenType) ([]LabelOffset, error) {
	labels, ok := typeLabels[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFristenType, string(t))
	}
	return append([]LabelOffset(nil), labels...), nil
}
