package table

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Table is a sorted, non-overlapping set of entries for one pipeline stage.
// The zero value is not usable; construct with Build or FromTriples.
type Table struct {
	label       string
	entries     []Entry
	fingerprint uint64
}

// Build copies entries, sorts them by SourceStart and validates them.
//
// Returns ErrInvalidEntry if an entry has SourceStart >= SourceEnd and
// ErrOverlap if two entries share a source value. An empty entries slice is
// valid and yields the identity table.
//
// Complexity: O(n log n).
func Build(entries []Entry, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sorted := slices.Clone(entries)
	for _, e := range sorted {
		if e.SourceStart >= e.SourceEnd {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEntry, e)
		}
	}
	slices.SortFunc(sorted, func(a, b Entry) int {
		switch {
		case a.SourceStart < b.SourceStart:
			return -1
		case a.SourceStart > b.SourceStart:
			return 1
		default:
			return 0
		}
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].SourceEnd > sorted[i].SourceStart {
			return nil, fmt.Errorf("%w: %s and %s", ErrOverlap, sorted[i-1], sorted[i])
		}
	}

	t := &Table{label: o.Label, entries: sorted}
	t.fingerprint = t.hash()

	return t, nil
}

// FromTriples builds a table from parser rows of (dest, source, length).
// A row with Length <= 0 is rejected with ErrInvalidEntry.
func FromTriples(triples []Triple, opts ...Option) (*Table, error) {
	entries := make([]Entry, len(triples))
	for i, tr := range triples {
		if tr.Length <= 0 {
			return nil, fmt.Errorf("%w: row %d has length %d", ErrInvalidEntry, i, tr.Length)
		}
		entries[i] = tr.Entry()
	}

	return Build(entries, opts...)
}

// Identity returns an empty table: every value maps to itself.
func Identity(opts ...Option) *Table {
	t, _ := Build(nil, opts...)
	return t
}

// Label returns the stage name given at construction ("" if none).
func (t *Table) Label() string { return t.label }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the sorted entries.
func (t *Table) Entries() []Entry { return slices.Clone(t.entries) }

// Fingerprint returns a content hash of the label and entries. Equal tables
// have equal fingerprints.
func (t *Table) Fingerprint() uint64 { return t.fingerprint }

func (t *Table) hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(t.label)
	buf := make([]byte, 0, 24)
	for _, e := range t.entries {
		buf = buf[:0]
		buf = binary.BigEndian.AppendUint64(buf, uint64(e.SourceStart))
		buf = binary.BigEndian.AppendUint64(buf, uint64(e.SourceEnd))
		buf = binary.BigEndian.AppendUint64(buf, uint64(e.TargetStart))
		_, _ = d.Write(buf)
	}

	return d.Sum64()
}
