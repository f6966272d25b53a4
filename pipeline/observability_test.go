package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/remap/pipeline"
)

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for idx := range rm.ScopeMetrics {
		for midx := range rm.ScopeMetrics[idx].Metrics {
			if rm.ScopeMetrics[idx].Metrics[midx].Name == name {
				return &rm.ScopeMetrics[idx].Metrics[midx]
			}
		}
	}

	return nil
}

func sumInt64(t *testing.T, m *metricdata.Metrics) int64 {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is %T, want Sum[int64]", m.Name, m.Data)

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}

	return total
}

// TestRun_RecordsStageMetrics checks the counters on the reference almanac.
func TestRun_RecordsStageMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	p := referenceAlmanac(t)

	_, err := p.Run(pipeline.PointSeeds(almanacSeeds),
		pipeline.WithMeter(mp.Meter("test")),
		pipeline.WithoutCoalesce(),
	)
	require.NoError(t, err)

	rm := collectMetrics(t, reader)

	runs := findMetric(rm, "remap.stage.runs")
	require.NotNil(t, runs, "remap.stage.runs metric not found")
	assert.Equal(t, int64(7), sumInt64(t, runs))

	in := findMetric(rm, "remap.stage.intervals.in")
	require.NotNil(t, in)
	assert.Equal(t, int64(28), sumInt64(t, in)) // 4 singletons × 7 stages

	pieces := findMetric(rm, "remap.stage.pieces")
	require.NotNil(t, pieces)
	assert.Equal(t, int64(28), sumInt64(t, pieces))

	out := findMetric(rm, "remap.stage.intervals.out")
	require.NotNil(t, out)
	assert.Equal(t, int64(28), sumInt64(t, out))
}

// TestRun_OpensSpans expects one Run span and one span per stage.
func TestRun_OpensSpans(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	p := referenceAlmanac(t)

	_, err := p.Run(pipeline.PointSeeds(almanacSeeds), pipeline.WithTracer(tp.Tracer("test")))
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 8)

	var root sdktrace.ReadOnlySpan
	stages := 0
	for _, s := range spans {
		switch s.Name() {
		case "pipeline.Run":
			root = s
		case "pipeline.stage":
			stages++
		}
	}
	require.NotNil(t, root)
	assert.Equal(t, 7, stages)
	for _, s := range spans {
		if s.Name() == "pipeline.stage" {
			assert.Equal(t, root.SpanContext().SpanID(), s.Parent().SpanID())
		}
	}
}
