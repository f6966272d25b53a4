// Package table implements the piecewise-linear translation table applied by
// one pipeline stage, and the two mappers that push values through it.
//
// Overview:
//
//   - An Entry declares a source sub-range [SourceStart, SourceEnd) and a
//     target start; values inside it move by Offset() = TargetStart - SourceStart.
//   - A Table is an ordered, pairwise non-overlapping set of entries. Values
//     that fall in no entry (a "gap") map to themselves. An empty table is
//     pure identity.
//   - Lookup maps a single value; MapInterval maps a whole half-open range by
//     splitting it at entry boundaries, never touching individual integers.
//
// Algorithm outline (MapInterval):
//  1. Binary-search the first entry whose SourceEnd lies beyond the interval start.
//  2. Walk entries forward while the remaining range is non-empty:
//     • the part before the entry's SourceStart is a gap piece, emitted as is;
//     • the part inside the entry is emitted shifted by the entry offset.
//  3. Whatever is left once entries run out is a final gap piece.
//
// The returned pieces are pairwise disjoint in the source domain and their
// union is exactly the input interval.
//
// Complexity:
//
//   - Build:       O(n log n) time, O(n) memory (n = entries).
//   - Lookup:      O(log n) time, O(1) memory.
//   - MapInterval: O(log n + k) time, O(k) memory (k = entries spanned).
//
// Errors (sentinel):
//
//   - ErrOverlap:      two entries cover a common source value.
//   - ErrInvalidEntry: an entry is empty or inverted (SourceStart >= SourceEnd).
//
// Thread safety:
//
//   - A *Table is immutable after Build and safe for concurrent readers.
package table
