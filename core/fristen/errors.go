package fristen

import (
	"errors"
	"fmt"

	"github.com/hochfrequenz/fristenkalender/core/model"
)

var (
	// ErrInvalidLabel is returned for labels outside the "<N>WT" / "<N>LWT" grammar.
	ErrInvalidLabel = errors.New("invalid label")
	// ErrUnknownDescriptionKey is returned when no description exists for a label/type pair.
	ErrUnknownDescriptionKey = errors.New("unknown description key")
	// ErrUnknownFristenType is returned for process types without a label mapping.
	ErrUnknownFristenType = errors.New("unknown fristen type")
)

// LabelError reports a label that cannot be used.
type LabelError struct {
	Label  string
	Reason string
}

func (e *LabelError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid label %q", e.Label)
	}
	return fmt.Sprintf("invalid label %q: %s", e.Label, e.Reason)
}

func (e *LabelError) Unwrap() error { return ErrInvalidLabel }

// DescriptionError reports a missing description.
type DescriptionError struct {
	Label string
	Type  model.FristenType
}

func (e *DescriptionError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("no description for label %q", e.Label)
	}
	return fmt.Sprintf("no description for label %q and type %s", e.Label, e.Type)
}

func (e *DescriptionError) Unwrap() error { return ErrUnknownDescriptionKey }
