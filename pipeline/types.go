package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/remap/interval"
)

// Sentinel errors returned by this package.
var (
	// ErrEmptyResult is interval.ErrEmptyResult, re-exported for callers that
	// only import pipeline.
	ErrEmptyResult = interval.ErrEmptyResult

	// ErrNilTable indicates that New received a nil stage.
	ErrNilTable = errors.New("pipeline: nil table")

	// ErrDuplicateLabel indicates two stages with the same non-empty label.
	ErrDuplicateLabel = errors.New("pipeline: duplicate stage label")

	// ErrOddSeedCount indicates range-mode seeds that do not pair up.
	ErrOddSeedCount = errors.New("pipeline: range seeds must come in start/length pairs")

	// ErrNegativeLength indicates a range-mode seed with length < 0.
	ErrNegativeLength = errors.New("pipeline: seed length must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pipeline: invalid option supplied")
)

// StageHook observes the output of one stage. index is zero-based; out must
// not be retained past the call.
type StageHook func(index int, label string, out []interval.Interval)

// Options holds parameters and callbacks that customize Run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers bounds the goroutines mapping one stage. 1 runs sequentially.
	Workers int

	// Coalesce merges the working set after every stage.
	Coalesce bool

	// Logger receives one debug record per stage.
	Logger *slog.Logger

	// Meter creates the per-stage counters.
	Meter metric.Meter

	// Tracer opens the Run and per-stage spans.
	Tracer trace.Tracer

	// OnStage is called after each stage.
	OnStage StageHook

	// internal error recorded during option parsing
	err error
}

// Option configures Run via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - sequential mapping (Workers == 1)
//   - coalescing enabled
//   - discard logger, no-op meter and tracer, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  1,
		Coalesce: true,
		Logger:   slog.New(slog.DiscardHandler),
		Meter:    metricnoop.NewMeterProvider().Meter(instrumentationName),
		Tracer:   tracenoop.NewTracerProvider().Tracer(instrumentationName),
		OnStage:  func(int, string, []interval.Interval) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers fans each stage's per-interval mapping out to at most n
// goroutines. Output order does not depend on n.
//
//	n > 1: parallel
//	n == 1: sequential (default)
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithoutCoalesce disables inter-stage coalescing. Results describe the same
// set of values, only less compactly.
func WithoutCoalesce() Option {
	return func(o *Options) {
		o.Coalesce = false
	}
}

// WithLogger routes per-stage debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMeter records per-stage counters on m.
func WithMeter(m metric.Meter) Option {
	return func(o *Options) {
		if m != nil {
			o.Meter = m
		}
	}
}

// WithTracer opens spans on t.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithOnStage registers a hook run after every stage.
func WithOnStage(fn StageHook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
