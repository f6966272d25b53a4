// Package remap computes where integer ranges land after a chain of
// piecewise-linear translation tables, without ever enumerating the values
// inside them.
//
// What is remap?
//
//	An in-memory, dependency-light library that brings together:
//		• interval/   half-open ranges, coalescing, minimum extraction
//		• table/      sorted translation tables, point lookup, interval splitting
//		• pipeline/   ordered stages, range fold, point fold, seed adapters
//		• memo/       cached point evaluation on top of a pipeline
//
// Typical flow:
//
//	seeds → seed-to-soil → coalesce → soil-to-fertilizer → … → humidity-to-location → minimum
//
// Each stage splits every working interval at the table's entry boundaries,
// shifts the covered pieces, keeps the gap pieces as they are and merges the
// result back into the fewest intervals. Work per stage is proportional to
// the number of intervals and entries, so seed ranges spanning billions of
// values cost the same as ranges spanning ten.
//
// Quick example:
//
//	p, _ := pipeline.FromTriples(stages, labels)
//	seeds, _ := pipeline.RangeSeeds([]int64{79, 14, 55, 13})
//	low, err := p.MinimumRanges(seeds) // 46
//
// See examples/ for a runnable program wiring configuration, logging,
// Prometheus metrics and the memo cache.
package remap
