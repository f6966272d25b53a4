package table

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Build and FromTriples.
var (
	// ErrOverlap indicates that two entries share a source value after sorting.
	// The input is malformed and the table is refused.
	ErrOverlap = errors.New("table: overlapping source ranges")

	// ErrInvalidEntry indicates an entry whose source range is empty or inverted.
	ErrInvalidEntry = errors.New("table: entry source range must be non-empty")
)

// Entry is one source-range-to-offset rule.
//
// Invariant: SourceStart < SourceEnd.
type Entry struct {
	SourceStart int64
	SourceEnd   int64
	TargetStart int64
}

// Len returns the number of source values covered by e.
func (e Entry) Len() int64 { return e.SourceEnd - e.SourceStart }

// Offset returns the delta applied to every value inside e.
func (e Entry) Offset() int64 { return e.TargetStart - e.SourceStart }

// Contains reports whether v lies in [SourceStart, SourceEnd).
func (e Entry) Contains(v int64) bool { return e.SourceStart <= v && v < e.SourceEnd }

func (e Entry) String() string {
	return fmt.Sprintf("[%d, %d)->%d", e.SourceStart, e.SourceEnd, e.TargetStart)
}

// Triple is the (destination_start, source_start, length) row handed over by
// the almanac parser.
type Triple struct {
	Dest   int64
	Source int64
	Length int64
}

// Entry converts t into an Entry. Validation happens in Build.
func (t Triple) Entry() Entry {
	return Entry{SourceStart: t.Source, SourceEnd: t.Source + t.Length, TargetStart: t.Dest}
}

// Options configures table construction.
//
// Label – the stage name, e.g. "seed-to-soil". Purely descriptive; it
// participates in the fingerprint and in pipeline stage lookup.
type Options struct {
	Label string
}

// Option represents a functional option for Build.
type Option func(*Options)

// WithLabel names the table.
func WithLabel(label string) Option {
	return func(o *Options) {
		o.Label = label
	}
}

// DefaultOptions returns an unlabeled configuration.
func DefaultOptions() Options {
	return Options{}
}
