package pipeline

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/katalvlaran/remap/pipeline"

const (
	metricStageRuns     = "remap.stage.runs"
	metricIntervalsIn   = "remap.stage.intervals.in"
	metricIntervalsOut  = "remap.stage.intervals.out"
	metricPiecesEmitted = "remap.stage.pieces"

	attrStage = "stage"
	attrIndex = "index"
)

// instruments holds the OTel counters recorded once per stage.
type instruments struct {
	runs   metric.Int64Counter
	in     metric.Int64Counter
	out    metric.Int64Counter
	pieces metric.Int64Counter
}

func newInstruments(mt metric.Meter) (*instruments, error) {
	runs, err := mt.Int64Counter(metricStageRuns,
		metric.WithDescription("Number of stage applications"),
		metric.WithUnit("{stage}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricStageRuns, err)
	}

	in, err := mt.Int64Counter(metricIntervalsIn,
		metric.WithDescription("Intervals entering a stage"),
		metric.WithUnit("{interval}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricIntervalsIn, err)
	}

	out, err := mt.Int64Counter(metricIntervalsOut,
		metric.WithDescription("Intervals leaving a stage after coalescing"),
		metric.WithUnit("{interval}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricIntervalsOut, err)
	}

	pieces, err := mt.Int64Counter(metricPiecesEmitted,
		metric.WithDescription("Pieces emitted by interval splitting before coalescing"),
		metric.WithUnit("{interval}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricPiecesEmitted, err)
	}

	return &instruments{runs: runs, in: in, out: out, pieces: pieces}, nil
}

func (ins *instruments) record(ctx context.Context, index int, label string, in, pieces, out int) {
	attrs := metric.WithAttributes(
		attribute.String(attrStage, label),
		attribute.Int(attrIndex, index),
	)
	ins.runs.Add(ctx, 1, attrs)
	ins.in.Add(ctx, int64(in), attrs)
	ins.pieces.Add(ctx, int64(pieces), attrs)
	ins.out.Add(ctx, int64(out), attrs)
}
