package interval

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package.
var (
	// ErrEmptyResult indicates that Minimum scanned a collection holding no
	// non-empty interval. No sentinel value is substituted.
	ErrEmptyResult = errors.New("interval: no values to take a minimum of")

	// ErrInverted indicates an attempt to construct an interval with End < Start.
	ErrInverted = errors.New("interval: end precedes start")
)

// Interval is the half-open integer range [Start, End).
//
// Invariant: Start <= End. An Interval with Start == End is empty.
type Interval struct {
	Start int64
	End   int64
}

// New returns the interval [start, end).
// Returns ErrInverted if end < start.
func New(start, end int64) (Interval, error) {
	if end < start {
		return Interval{}, fmt.Errorf("%w: [%d, %d)", ErrInverted, start, end)
	}

	return Interval{Start: start, End: end}, nil
}

// FromLength returns [start, start+length). A negative length is rejected
// with ErrInverted.
func FromLength(start, length int64) (Interval, error) {
	return New(start, start+length)
}

// Point returns the singleton interval [v, v+1).
func Point(v int64) Interval {
	return Interval{Start: v, End: v + 1}
}

// Len returns the number of values in the interval.
func (iv Interval) Len() int64 {
	return iv.End - iv.Start
}

// IsEmpty reports whether the interval holds no value.
func (iv Interval) IsEmpty() bool {
	return iv.End <= iv.Start
}

// Contains reports whether v lies in [Start, End).
func (iv Interval) Contains(v int64) bool {
	return iv.Start <= v && v < iv.End
}

// Overlaps reports whether iv and other share at least one value.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Intersect returns the common part of iv and other. If they do not overlap
// the result is empty (Len() == 0) with unspecified bounds.
func (iv Interval) Intersect(other Interval) Interval {
	out := Interval{Start: max(iv.Start, other.Start), End: min(iv.End, other.End)}
	if out.End < out.Start {
		out.End = out.Start
	}

	return out
}

// Shift returns the interval moved by delta.
func (iv Interval) Shift(delta int64) Interval {
	return Interval{Start: iv.Start + delta, End: iv.End + delta}
}

// String renders the interval as "[start, end)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}
