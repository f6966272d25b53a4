// Package pipeline_test provides examples demonstrating the range and point
// folds on the reference almanac.
package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/remap/interval"
	"github.com/katalvlaran/remap/pipeline"
	"github.com/katalvlaran/remap/table"
)

// ExamplePipeline_MinimumRanges interprets "79 14 55 13" as two seed ranges
// and finds the lowest location reachable from any of their 27 values.
// Complexity: O(N·(k·log n + p·log p)) for N stages.
func ExamplePipeline_MinimumRanges() {
	p, err := pipeline.FromTriples(almanacStages, almanacLabels)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	seeds, err := pipeline.RangeSeeds([]int64{79, 14, 55, 13})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	low, err := p.MinimumRanges(seeds)
	fmt.Println("lowest location:", low, err)
	// Output: lowest location: 46 <nil>
}

// ExamplePipeline_MinimumPoints treats the same numbers as individual seeds.
func ExamplePipeline_MinimumPoints() {
	p, _ := pipeline.FromTriples(almanacStages, almanacLabels)

	low, err := p.MinimumPoints([]int64{79, 14, 55, 13})
	fmt.Println("lowest location:", low, err)
	// Output: lowest location: 35 <nil>
}

// ExamplePipeline_Run prints the working set after every stage.
func ExamplePipeline_Run() {
	soil, _ := table.FromTriples([]table.Triple{{Dest: 50, Source: 98, Length: 2}, {Dest: 52, Source: 50, Length: 48}},
		table.WithLabel("seed-to-soil"))
	fert, _ := table.FromTriples([]table.Triple{{Dest: 0, Source: 15, Length: 37}, {Dest: 37, Source: 52, Length: 2}, {Dest: 39, Source: 0, Length: 15}},
		table.WithLabel("soil-to-fertilizer"))
	p, _ := pipeline.New([]*table.Table{soil, fert})

	_, _ = p.Run([]interval.Interval{{Start: 45, End: 55}}, pipeline.WithOnStage(
		func(_ int, label string, out []interval.Interval) {
			fmt.Println(label, out)
		}))
	// Output:
	// seed-to-soil [[45, 50) [52, 57)]
	// soil-to-fertilizer [[30, 35) [37, 39) [54, 57)]
}
