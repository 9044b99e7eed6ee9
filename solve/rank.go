package solve

import "sort"

// Rank returns paths reordered by ascending step count. The sort is
// stable: equal-length paths keep the enumerator's emission order, so
// tie-break order is exactly the fixed direction order of the search.
// The input slice is not modified; path contents are never touched.
// Returns ErrNoPaths if paths is empty. Complexity: O(n log n).
func Rank(paths []Path) ([]Path, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	ranked := make([]Path, len(paths))
	copy(ranked, paths)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i]) < len(ranked[j])
	})

	return ranked, nil
}

// Summarize ranks paths and reports the count and both extremes.
// Returns ErrNoPaths if paths is empty — the caller must handle a
// pathless maze explicitly rather than read a defaulted Summary.
func Summarize(paths []Path) (Summary, error) {
	ranked, err := Rank(paths)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Total:    len(ranked),
		Shortest: ranked[0],
		Longest:  ranked[len(ranked)-1],
	}, nil
}
