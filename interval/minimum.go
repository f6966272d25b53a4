package interval

// Minimum returns the smallest Start among the non-empty intervals of ivs.
// Returns ErrEmptyResult if there is none.
//
// Complexity: O(k).
func Minimum(ivs []Interval) (int64, error) {
	var (
		best  int64
		found bool
	)
	for _, iv := range ivs {
		if iv.IsEmpty() {
			continue
		}
		if !found || iv.Start < best {
			best = iv.Start
			found = true
		}
	}
	if !found {
		return 0, ErrEmptyResult
	}

	return best, nil
}
