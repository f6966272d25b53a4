package interval_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/remap/interval"
)

// TestNew_Inverted verifies that End < Start is rejected.
func TestNew_Inverted(t *testing.T) {
	_, err := interval.New(5, 4)
	require.ErrorIs(t, err, interval.ErrInverted)

	iv, err := interval.New(5, 5)
	require.NoError(t, err)
	assert.True(t, iv.IsEmpty())

	_, err = interval.FromLength(10, -1)
	require.ErrorIs(t, err, interval.ErrInverted)
}

// TestIntervalHelpers covers the small value methods.
func TestIntervalHelpers(t *testing.T) {
	iv := interval.Interval{Start: 10, End: 20}
	assert.Equal(t, int64(10), iv.Len())
	assert.True(t, iv.Contains(10))
	assert.True(t, iv.Contains(19))
	assert.False(t, iv.Contains(20))
	assert.True(t, iv.Overlaps(interval.Interval{Start: 19, End: 30}))
	assert.False(t, iv.Overlaps(interval.Interval{Start: 20, End: 30}))
	assert.Equal(t, interval.Interval{Start: 15, End: 20}, iv.Intersect(interval.Interval{Start: 15, End: 40}))
	assert.True(t, iv.Intersect(interval.Interval{Start: 30, End: 40}).IsEmpty())
	assert.Equal(t, interval.Interval{Start: 13, End: 23}, iv.Shift(3))
	assert.Equal(t, interval.Interval{Start: 7, End: 8}, interval.Point(7))
	assert.Equal(t, "[10, 20)", iv.String())
}

// TestCoalesce_Table exercises overlap, adjacency, gaps and empties.
func TestCoalesce_Table(t *testing.T) {
	cases := []struct {
		name string
		in   []interval.Interval
		want []interval.Interval
	}{
		{"nil", nil, []interval.Interval{}},
		{"single", []interval.Interval{{1, 3}}, []interval.Interval{{1, 3}}},
		{"adjacent", []interval.Interval{{3, 5}, {1, 3}}, []interval.Interval{{1, 5}}},
		{"overlap", []interval.Interval{{1, 4}, {2, 6}}, []interval.Interval{{1, 6}}},
		{"contained", []interval.Interval{{1, 10}, {2, 3}}, []interval.Interval{{1, 10}}},
		{"gap", []interval.Interval{{5, 6}, {1, 2}}, []interval.Interval{{1, 2}, {5, 6}}},
		{"empties dropped", []interval.Interval{{4, 4}, {1, 2}, {9, 9}}, []interval.Interval{{1, 2}}},
		{"all empty", []interval.Interval{{4, 4}}, []interval.Interval{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := interval.Coalesce(tc.in)
			assert.Equal(t, tc.want, got)
			assert.True(t, interval.IsCoalesced(got))
		})
	}
}

// TestCoalesce_DoesNotMutateInput guards the read-only contract.
func TestCoalesce_DoesNotMutateInput(t *testing.T) {
	in := []interval.Interval{{5, 9}, {1, 2}, {2, 5}}
	snapshot := append([]interval.Interval(nil), in...)
	_ = interval.Coalesce(in)
	assert.Equal(t, snapshot, in)
}

// TestMinimum covers the happy path and ErrEmptyResult.
func TestMinimum(t *testing.T) {
	got, err := interval.Minimum([]interval.Interval{{40, 50}, {7, 8}, {3, 3}})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	_, err = interval.Minimum(nil)
	assert.True(t, errors.Is(err, interval.ErrEmptyResult))

	_, err = interval.Minimum([]interval.Interval{{3, 3}})
	assert.ErrorIs(t, err, interval.ErrEmptyResult)
}

func genIntervals() *rapid.Generator[[]interval.Interval] {
	return rapid.Custom(func(t *rapid.T) []interval.Interval {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		out := make([]interval.Interval, n)
		for i := range out {
			s := rapid.Int64Range(-50, 50).Draw(t, "start")
			l := rapid.Int64Range(0, 20).Draw(t, "len")
			out[i] = interval.Interval{Start: s, End: s + l}
		}
		return out
	})
}

// TestCoalesce_Properties checks idempotence and value preservation.
func TestCoalesce_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := genIntervals().Draw(rt, "ivs")
		once := interval.Coalesce(in)
		if !interval.IsCoalesced(once) {
			rt.Fatalf("not coalesced: %v", once)
		}
		twice := interval.Coalesce(once)
		if len(twice) != len(once) {
			rt.Fatalf("not idempotent: %v vs %v", once, twice)
		}
		for i := range once {
			if once[i] != twice[i] {
				rt.Fatalf("not idempotent: %v vs %v", once, twice)
			}
		}
		// membership is preserved for every probed value
		for v := int64(-55); v <= 75; v++ {
			inAny := false
			for _, iv := range in {
				if iv.Contains(v) {
					inAny = true
					break
				}
			}
			inOut := false
			for _, iv := range once {
				if iv.Contains(v) {
					inOut = true
					break
				}
			}
			if inAny != inOut {
				rt.Fatalf("membership of %d changed: %v -> %v", v, in, once)
			}
		}
	})
}
