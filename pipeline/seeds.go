package pipeline

import (
	"fmt"

	"github.com/katalvlaran/remap/interval"
)

// Seed is one (start, length) pair from the seeds header in range mode.
type Seed struct {
	Start  int64
	Length int64
}

// PointSeeds treats every number as an individual value, [v, v+1).
func PointSeeds(values []int64) []interval.Interval {
	out := make([]interval.Interval, len(values))
	for i, v := range values {
		out[i] = interval.Point(v)
	}

	return out
}

// RangeSeeds consumes values two at a time as (start, length) pairs.
// Returns ErrOddSeedCount for an odd count and ErrNegativeLength for a
// negative length. Zero-length pairs yield empty intervals, which Run drops.
func RangeSeeds(values []int64) ([]interval.Interval, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d numbers", ErrOddSeedCount, len(values))
	}
	seeds := make([]Seed, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		seeds = append(seeds, Seed{Start: values[i], Length: values[i+1]})
	}

	return SeedIntervals(seeds)
}

// SeedIntervals converts (start, length) seeds to half-open intervals.
func SeedIntervals(seeds []Seed) ([]interval.Interval, error) {
	out := make([]interval.Interval, len(seeds))
	for i, s := range seeds {
		if s.Length < 0 {
			return nil, fmt.Errorf("%w: seed %d has length %d", ErrNegativeLength, i, s.Length)
		}
		out[i] = interval.Interval{Start: s.Start, End: s.Start + s.Length}
	}

	return out, nil
}
