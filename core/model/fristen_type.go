package model

import (
	"fmt"
	"strings"
)

// FristenType identifies the regulatory process a Frist belongs to.
type FristenType string

const (
	FristenTypeGPKE    FristenType = "GPKE"
	FristenTypeGeLiGas FristenType = "GELI_GAS"
	FristenTypeMaBiS   FristenType = "MABIS"
	FristenTypeKoV     FristenType = "KOV"
	FristenTypeWiM     FristenType = "WIM"
)

// FristenTypes lists all known process types in a stable order.
var FristenTypes = []FristenType{
	FristenTypeGPKE,
	FristenTypeGeLiGas,
	FristenTypeMaBiS,
	FristenTypeKoV,
	FristenTypeWiM,
}

// String returns the human readable name of the process.
func (t FristenType) String() string {
	switch t {
	case FristenTypeGPKE:
		return "GPKE"
	case FristenTypeGeLiGas:
		return "GeLi Gas"
	case FristenTypeMaBiS:
		return "MaBiS"
	case FristenTypeKoV:
		return "KoV"
	case FristenTypeWiM:
		return "WiM"
	default:
		return string(t)
	}
}

// ParseFristenType resolves s case-insensitively. Both the identifier
// ("GELI_GAS") and the display name ("GeLi Gas") are accepted.
func ParseFristenType(s string) (FristenType, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for _, t := range FristenTypes {
		if string(t) == norm {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown fristen type %q", s)
}
