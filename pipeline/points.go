package pipeline

// MapPoint folds v through every stage with Table.Lookup.
// Complexity: O(N·log n) for N stages.
func (p *Pipeline) MapPoint(v int64) int64 {
	for _, t := range p.stages {
		v = t.Lookup(v)
	}

	return v
}

// RunPoints maps each value independently. The result is index-aligned
// with values.
func (p *Pipeline) RunPoints(values []int64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = p.MapPoint(v)
	}

	return out
}

// Trace returns v followed by its image after every stage, so
// len(Trace(v)) == Len()+1 and the last element is MapPoint(v).
func (p *Pipeline) Trace(v int64) []int64 {
	path := make([]int64, 0, len(p.stages)+1)
	path = append(path, v)
	for _, t := range p.stages {
		v = t.Lookup(v)
		path = append(path, v)
	}

	return path
}

// MinimumPoints returns the smallest image of values.
// Returns ErrEmptyResult if values is empty.
func (p *Pipeline) MinimumPoints(values []int64) (int64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyResult
	}
	best := p.MapPoint(values[0])
	for _, v := range values[1:] {
		best = min(best, p.MapPoint(v))
	}

	return best, nil
}
