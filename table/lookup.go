package table

import (
	"sort"

	"github.com/katalvlaran/remap/interval"
)

// Lookup maps a single value through the table.
//
// One binary search finds the candidate entry, the one with the greatest
// SourceStart <= v; v is inside it iff v < SourceEnd. Inside → v + Offset(),
// otherwise v is returned unchanged.
//
// Complexity: O(log n).
func (t *Table) Lookup(v int64) int64 {
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].SourceStart > v
	}) - 1
	if i >= 0 && v < t.entries[i].SourceEnd {
		return v + t.entries[i].Offset()
	}

	return v
}

// MapInterval partitions iv at entry boundaries and maps each piece.
// See AppendMapped.
func (t *Table) MapInterval(iv interval.Interval) []interval.Interval {
	return t.AppendMapped(nil, iv)
}

// AppendMapped appends the mapped pieces of iv to dst and returns the
// extended slice.
//
// Every emitted piece lies either wholly inside one entry (shifted by its
// offset) or wholly inside a gap (unchanged). The source pre-images of the
// pieces are disjoint and their union is exactly iv; an empty iv emits nothing.
//
// Complexity: O(log n + k), k = number of entries iv spans.
func (t *Table) AppendMapped(dst []interval.Interval, iv interval.Interval) []interval.Interval {
	if iv.IsEmpty() {
		return dst
	}
	rem := iv

	// SourceEnd is increasing too, since entries are sorted and disjoint.
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].SourceEnd > rem.Start
	})
	for ; i < len(t.entries) && rem.Start < rem.End; i++ {
		e := t.entries[i]
		if e.SourceStart >= rem.End {
			break
		}
		if rem.Start < e.SourceStart {
			dst = append(dst, interval.Interval{Start: rem.Start, End: e.SourceStart})
			rem.Start = e.SourceStart
		}
		end := min(rem.End, e.SourceEnd)
		dst = append(dst, interval.Interval{Start: rem.Start, End: end}.Shift(e.Offset()))
		rem.Start = end
	}
	if rem.Start < rem.End {
		dst = append(dst, rem)
	}

	return dst
}
