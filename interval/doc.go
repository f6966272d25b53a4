// Package interval defines the half-open integer range that flows through
// a remapping pipeline, together with the two whole-collection operations
// every stage relies on: coalescing and minimum extraction.
//
// What:
//
//   - Interval{Start, End} is the half-open range [Start, End).
//     Start == End is empty: it carries no value and is never propagated.
//   - Coalesce merges overlapping or exactly adjacent intervals into the
//     fewest equivalent intervals, sorted by Start.
//   - Minimum returns the smallest Start of a collection.
//
// Why:
//
//   - Ranges may span billions of values; operating on endpoints keeps every
//     stage proportional to the number of intervals, not their lengths.
//   - Coalescing between stages bounds the growth of intermediate state when
//     splits at table boundaries fragment the working set.
//
// Complexity:
//
//   - Coalesce: O(k log k) time, O(k) memory (k = number of intervals).
//   - Minimum:  O(k) time, O(1) memory.
//
// Errors:
//
//   - ErrEmptyResult: Minimum was asked to scan a collection with no
//     non-empty interval.
//
// Intervals are values. No function in this package mutates its input slice.
package interval
