package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/remap/pipeline"
	"github.com/katalvlaran/remap/table"
)

// almanacLabels names the seven stages of the reference almanac.
var almanacLabels = []string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

// almanacStages holds the reference almanac rows as (dest, source, length).
var almanacStages = [][]table.Triple{
	{{Dest: 50, Source: 98, Length: 2}, {Dest: 52, Source: 50, Length: 48}},
	{{Dest: 0, Source: 15, Length: 37}, {Dest: 37, Source: 52, Length: 2}, {Dest: 39, Source: 0, Length: 15}},
	{{Dest: 49, Source: 53, Length: 8}, {Dest: 0, Source: 11, Length: 42}, {Dest: 42, Source: 0, Length: 7}, {Dest: 57, Source: 7, Length: 4}},
	{{Dest: 88, Source: 18, Length: 7}, {Dest: 18, Source: 25, Length: 70}},
	{{Dest: 45, Source: 77, Length: 23}, {Dest: 81, Source: 45, Length: 19}, {Dest: 68, Source: 64, Length: 13}},
	{{Dest: 0, Source: 69, Length: 1}, {Dest: 1, Source: 0, Length: 69}},
	{{Dest: 60, Source: 56, Length: 37}, {Dest: 56, Source: 93, Length: 4}},
}

var almanacSeeds = []int64{79, 14, 55, 13}

// referenceAlmanac builds the seven-stage reference pipeline.
func referenceAlmanac(tb testing.TB) *pipeline.Pipeline {
	tb.Helper()
	p, err := pipeline.FromTriples(almanacStages, almanacLabels)
	require.NoError(tb, err)
	return p
}
