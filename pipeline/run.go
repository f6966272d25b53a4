package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/remap/interval"
	"github.com/katalvlaran/remap/table"
)

// Run pushes initial through every stage in order and returns the final
// interval collection (coalesced unless WithoutCoalesce is given).
//
// Behavior, per stage:
//  1. Map every working interval with Table.AppendMapped; each interval is
//     independent of the others, so WithWorkers may split this step.
//  2. Concatenate the pieces in input order and drop empty ones.
//  3. Coalesce.
//
// Empty input intervals are dropped before the first stage. initial is not
// modified. Returns ErrOptionViolation for bad options and ctx.Err() when
// the context is cancelled.
func (p *Pipeline) Run(initial []interval.Interval, opts ...Option) ([]interval.Interval, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	ins, err := newInstruments(o.Meter)
	if err != nil {
		return nil, err
	}

	ctx, span := o.Tracer.Start(o.Ctx, "pipeline.Run", trace.WithAttributes(
		attribute.Int("stages", len(p.stages)),
		attribute.Int("intervals", len(initial)),
	))
	defer span.End()

	cur := interval.DropEmpty(initial)
	for i, t := range p.stages {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		next, err := p.runStage(ctx, i, t, cur, &o, ins)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		cur = next
	}
	span.SetAttributes(attribute.Int("result.intervals", len(cur)))

	return cur, nil
}

// MinimumRanges runs the pipeline and returns the smallest reachable value.
// Returns ErrEmptyResult when initial holds no non-empty interval.
func (p *Pipeline) MinimumRanges(initial []interval.Interval, opts ...Option) (int64, error) {
	out, err := p.Run(initial, opts...)
	if err != nil {
		return 0, err
	}

	return interval.Minimum(out)
}

func (p *Pipeline) runStage(
	ctx context.Context,
	index int,
	t *table.Table,
	cur []interval.Interval,
	o *Options,
	ins *instruments,
) ([]interval.Interval, error) {
	ctx, span := o.Tracer.Start(ctx, "pipeline.stage", trace.WithAttributes(
		attribute.Int(attrIndex, index),
		attribute.String(attrStage, t.Label()),
		attribute.Int("entries", t.Len()),
	))
	defer span.End()

	mapped, err := mapAll(ctx, t, cur, o.Workers)
	if err != nil {
		return nil, fmt.Errorf("stage %d (%s): %w", index, t.Label(), err)
	}
	pieces := len(mapped)

	var next []interval.Interval
	if o.Coalesce {
		next = interval.Coalesce(mapped)
	} else {
		next = interval.DropEmpty(mapped)
	}

	ins.record(ctx, index, t.Label(), len(cur), pieces, len(next))
	span.SetAttributes(attribute.Int("pieces", pieces), attribute.Int("out", len(next)))
	o.Logger.DebugContext(ctx, "stage mapped",
		slog.Int(attrIndex, index),
		slog.String(attrStage, t.Label()),
		slog.String("fingerprint", fmt.Sprintf("%016x", t.Fingerprint())),
		slog.Int("in", len(cur)),
		slog.Int("pieces", pieces),
		slog.Int("out", len(next)),
	)
	o.OnStage(index, t.Label(), next)

	return next, nil
}

// mapAll maps every interval of cur through t. With workers > 1 the input
// is cut into contiguous chunks mapped concurrently; chunk results are
// concatenated in chunk order so the output matches the sequential one.
func mapAll(ctx context.Context, t *table.Table, cur []interval.Interval, workers int) ([]interval.Interval, error) {
	if workers <= 1 || len(cur) < 2 {
		out := make([]interval.Interval, 0, len(cur))
		for _, iv := range cur {
			out = t.AppendMapped(out, iv)
		}
		return out, nil
	}

	chunks := min(workers, len(cur))
	size := (len(cur) + chunks - 1) / chunks
	parts := make([][]interval.Interval, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		lo := c * size
		hi := min(lo+size, len(cur))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			part := make([]interval.Interval, 0, hi-lo)
			for _, iv := range cur[lo:hi] {
				if err := gctx.Err(); err != nil {
					return err
				}
				part = t.AppendMapped(part, iv)
			}
			parts[c] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	out := make([]interval.Interval, 0, total)
	for _, part := range parts {
		out = append(out, part...)
	}

	return out, nil
}
