// Package pipeline folds integer intervals through an ordered chain of
// translation tables and extracts the smallest reachable value.
//
// Overview:
//
//   - A Pipeline is an immutable, ordered list of *table.Table stages.
//     Stage order is fixed at construction; stage N's output domain is
//     stage N+1's input domain.
//   - Run (range mode) maps every interval of the working set through the
//     current stage with Table.AppendMapped, drops empty pieces and
//     coalesces the result before the next stage.
//   - MapPoint / RunPoints (point mode) push single values through
//     Table.Lookup. For any value v, MapPoint(v) equals the single value
//     Run produces from [v, v+1).
//   - PointSeeds / RangeSeeds turn the parser's seed numbers into the
//     initial interval collection.
//
// Data flow:
//
//	initial → stage 1 → coalesce → stage 2 → coalesce → … → stage N → Minimum
//
// Options:
//
//   - WithContext:     cancellation checked between stages and inside workers.
//   - WithWorkers:     fan the per-interval mapping of a stage out to n goroutines.
//   - WithoutCoalesce: keep every piece (empties are still dropped).
//   - WithLogger:      one debug record per stage.
//   - WithMeter:       OpenTelemetry counters per stage.
//   - WithTracer:      one span per Run and one child span per stage.
//   - WithOnStage:     hook receiving each stage's output.
//
// Complexity (range mode, per stage):
//
//   - Time:  O(k·log n + p·log p), k = working intervals, n = entries,
//     p = emitted pieces (the log p term is the coalescing sort).
//   - Space: O(p).
//
// Errors (sentinel):
//
//   - ErrEmptyResult:     minimum of an empty collection (same value as interval.ErrEmptyResult).
//   - ErrNilTable:        a nil stage was passed to New.
//   - ErrDuplicateLabel:  two stages share a non-empty label.
//   - ErrOddSeedCount:    range-mode seeds are not start/length pairs.
//   - ErrNegativeLength:  a range-mode seed has a negative length.
//   - ErrOptionViolation: an Option received an invalid value.
//
// Thread safety:
//
//   - A *Pipeline is immutable; concurrent Runs are safe.
package pipeline
