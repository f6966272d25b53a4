// Package memo caches point-mode evaluations of a pipeline.
//
// Point mode pushes one value through every stage with a binary search per
// stage. When the same values are queried repeatedly (seed lists with
// duplicates, interactive exploration of a trace), an Evaluator answers
// from a bounded ristretto cache instead.
//
// Cached answers are always equal to Pipeline.MapPoint: the cache may drop
// or reject entries at will, never alter them.
//
// Thread safety: an Evaluator is safe for concurrent use.
package memo

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/ristretto"

	"github.com/katalvlaran/remap/pipeline"
)

// ErrNilPipeline indicates New received a nil pipeline.
var ErrNilPipeline = errors.New("memo: pipeline is nil")

// Default cache sizing: up to 1<<16 cached values, admission sketch ten
// times larger, as ristretto recommends.
const (
	DefaultMaxCost     int64 = 1 << 16
	DefaultNumCounters int64 = 10 * DefaultMaxCost
	DefaultBufferItems int64 = 64
)

// Config sizes the cache. Every cached value costs 1, so MaxCost is the
// maximum number of cached values. Zero fields take their defaults.
type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64

	// Metrics enables hit/miss accounting, reported by Stats.
	Metrics bool
}

// DefaultConfig returns the default cache sizing with metrics off.
func DefaultConfig() Config {
	return Config{
		NumCounters: DefaultNumCounters,
		MaxCost:     DefaultMaxCost,
		BufferItems: DefaultBufferItems,
	}
}

// Stats reports cache effectiveness. Zero unless Config.Metrics was set.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Evaluator memoizes Pipeline.MapPoint.
type Evaluator struct {
	p     *pipeline.Pipeline
	cache *ristretto.Cache
}

// New returns an Evaluator over p.
func New(p *pipeline.Pipeline, cfg Config) (*Evaluator, error) {
	if p == nil {
		return nil, ErrNilPipeline
	}
	def := DefaultConfig()
	if cfg.NumCounters <= 0 {
		cfg.NumCounters = def.NumCounters
	}
	if cfg.MaxCost <= 0 {
		cfg.MaxCost = def.MaxCost
	}
	if cfg.BufferItems <= 0 {
		cfg.BufferItems = def.BufferItems
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        cfg.NumCounters,
		MaxCost:            cfg.MaxCost,
		BufferItems:        cfg.BufferItems,
		Metrics:            cfg.Metrics,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("memo: create cache: %w", err)
	}

	return &Evaluator{p: p, cache: cache}, nil
}

// Pipeline returns the evaluated pipeline.
func (e *Evaluator) Pipeline() *pipeline.Pipeline { return e.p }

// Eval returns p.MapPoint(v), from cache when possible.
func (e *Evaluator) Eval(v int64) int64 {
	if got, ok := e.cache.Get(v); ok {
		return got.(int64)
	}
	out := e.p.MapPoint(v)
	e.cache.Set(v, out, 1)

	return out
}

// Minimum returns the smallest Eval over values.
// Returns pipeline.ErrEmptyResult if values is empty.
func (e *Evaluator) Minimum(values []int64) (int64, error) {
	if len(values) == 0 {
		return 0, pipeline.ErrEmptyResult
	}
	best := e.Eval(values[0])
	for _, v := range values[1:] {
		best = min(best, e.Eval(v))
	}

	return best, nil
}

// Wait blocks until buffered writes are applied to the cache.
func (e *Evaluator) Wait() { e.cache.Wait() }

// Stats returns hit and miss counts.
func (e *Evaluator) Stats() Stats {
	if e.cache.Metrics == nil {
		return Stats{}
	}

	return Stats{Hits: e.cache.Metrics.Hits(), Misses: e.cache.Metrics.Misses()}
}

// Close stops the cache's background goroutines. The Evaluator must not be
// used afterwards.
func (e *Evaluator) Close() { e.cache.Close() }
