package valueobject

import (
	"errors"
	"fmt"
)

// ErrInvalidStatusTransition is returned when a synthesis run attempts an
// illegal status transition.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// ---------------------------------------------------------------------------
// SynthesisStatus – immutable value object
// ---------------------------------------------------------------------------

// SynthesisStatus represents the lifecycle stage of a structure synthesis run:
// IDLE -> GENERATING -> RANKED.
type SynthesisStatus struct {
	value string
}

const (
	synthesisStatusIdle       = "IDLE"
	synthesisStatusGenerating = "GENERATING"
	synthesisStatusRanked     = "RANKED"
)

var (
	SynthesisStatusIdle       = SynthesisStatus{value: synthesisStatusIdle}
	SynthesisStatusGenerating = SynthesisStatus{value: synthesisStatusGenerating}
	SynthesisStatusRanked     = SynthesisStatus{value: synthesisStatusRanked}
)

var validSynthesisStatuses = map[string]SynthesisStatus{
	synthesisStatusIdle:       SynthesisStatusIdle,
	synthesisStatusGenerating: SynthesisStatusGenerating,
	synthesisStatusRanked:     SynthesisStatusRanked,
}

// NewSynthesisStatus creates a SynthesisStatus from a raw string.
func NewSynthesisStatus(s string) (SynthesisStatus, error) {
	v, ok := validSynthesisStatuses[s]
	if !ok {
		return SynthesisStatus{}, fmt.Errorf("invalid synthesis status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s SynthesisStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s SynthesisStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s SynthesisStatus) Equal(other SynthesisStatus) bool {
	return s.value == other.value
}

// CanTransitionTo reports whether the status may legally move to next.
func (s SynthesisStatus) CanTransitionTo(next SynthesisStatus) bool {
	switch s {
	case SynthesisStatusIdle:
		return next.Equal(SynthesisStatusGenerating)
	case SynthesisStatusGenerating:
		return next.Equal(SynthesisStatusRanked)
	default:
		return false
	}
}
