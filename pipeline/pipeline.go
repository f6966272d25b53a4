package pipeline

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/remap/table"
)

// Pipeline is an ordered, immutable chain of translation tables.
type Pipeline struct {
	stages  []*table.Table
	byLabel map[string]int
}

// New builds a pipeline whose stage order is the order of tables.
// The slice is copied; tables themselves are immutable.
//
// Returns ErrNilTable for a nil element and ErrDuplicateLabel when two
// stages share a non-empty label. A pipeline with no stage is valid and maps
// every value to itself.
func New(tables []*table.Table) (*Pipeline, error) {
	p := &Pipeline{
		stages:  make([]*table.Table, len(tables)),
		byLabel: make(map[string]int, len(tables)),
	}
	for i, t := range tables {
		if t == nil {
			return nil, fmt.Errorf("%w: stage %d", ErrNilTable, i)
		}
		if l := t.Label(); l != "" {
			if prev, dup := p.byLabel[l]; dup {
				return nil, fmt.Errorf("%w: %q at stages %d and %d", ErrDuplicateLabel, l, prev, i)
			}
			p.byLabel[l] = i
		}
		p.stages[i] = t
	}

	return p, nil
}

// FromTriples builds every stage with table.FromTriples, labelling stage i
// with labels[i] when labels is long enough.
func FromTriples(stages [][]table.Triple, labels []string) (*Pipeline, error) {
	tables := make([]*table.Table, len(stages))
	for i, rows := range stages {
		var opts []table.Option
		if i < len(labels) {
			opts = append(opts, table.WithLabel(labels[i]))
		}
		t, err := table.FromTriples(rows, opts...)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		tables[i] = t
	}

	return New(tables)
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Stages returns the stages in order. The slice is a copy.
func (p *Pipeline) Stages() []*table.Table { return slices.Clone(p.stages) }

// Stage returns the table labelled label and its position.
// Complexity: O(1).
func (p *Pipeline) Stage(label string) (*table.Table, int, bool) {
	i, ok := p.byLabel[label]
	if !ok {
		return nil, -1, false
	}

	return p.stages[i], i, true
}

// Fingerprint hashes the stage fingerprints in order. Pipelines with the
// same tables in the same order have equal fingerprints.
func (p *Pipeline) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, t := range p.stages {
		binary.BigEndian.PutUint64(buf[:], t.Fingerprint())
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
