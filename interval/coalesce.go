package interval

import (
	"slices"
)

// DropEmpty returns the non-empty intervals of ivs, preserving order.
// The input slice is left untouched.
func DropEmpty(ivs []Interval) []Interval {
	out := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		if !iv.IsEmpty() {
			out = append(out, iv)
		}
	}

	return out
}

// Coalesce merges overlapping and exactly adjacent intervals.
//
// Behavior:
//  1. Empty intervals are discarded.
//  2. The remainder is sorted by Start.
//  3. A single walk keeps an accumulator; the next interval is folded in
//     whenever next.Start <= acc.End, extending acc.End to the larger end,
//     otherwise the accumulator is flushed.
//
// The output is sorted, non-overlapping and has no adjacent pair that could
// merge, so Coalesce(Coalesce(x)) equals Coalesce(x).
//
// Complexity: O(k log k) time, O(k) memory.
func Coalesce(ivs []Interval) []Interval {
	work := DropEmpty(ivs)
	if len(work) < 2 {
		return work
	}
	slices.SortFunc(work, func(a, b Interval) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		default:
			return 0
		}
	})

	out := work[:0]
	acc := work[0]
	for _, next := range work[1:] {
		if next.Start <= acc.End {
			acc.End = max(acc.End, next.End)
			continue
		}
		out = append(out, acc)
		acc = next
	}

	return append(out, acc)
}

// IsCoalesced reports whether ivs is already in Coalesce output form:
// no empty interval, sorted, and every neighbour separated by a gap.
func IsCoalesced(ivs []Interval) bool {
	for i, iv := range ivs {
		if iv.IsEmpty() {
			return false
		}
		if i > 0 && iv.Start <= ivs[i-1].End {
			return false
		}
	}

	return true
}

// TotalLen sums the lengths of ivs. Overlaps are counted twice.
func TotalLen(ivs []Interval) int64 {
	var n int64
	for _, iv := range ivs {
		n += iv.Len()
	}

	return n
}
