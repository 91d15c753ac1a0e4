package domain

// Progress reports how far a split has got.
// It is emitted once after each part is written.
type Progress struct {
	// Completed is the number of parts written so far.
	Completed int

	// Total is the number of parts in the split.
	Total int

	// Output is the part that was just written.
	Output OutputFile
}

// Fraction returns the cumulative fraction done, in (0, 1].
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// Percent returns Fraction scaled to a whole percentage.
func (p Progress) Percent() int {
	return int(p.Fraction() * 100)
}

// ProgressFunc receives progress updates. A nil ProgressFunc is allowed.
type ProgressFunc func(Progress)
