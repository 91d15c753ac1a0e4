package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PartSpec is the half-open line range [Start, End) assigned to one part.
type PartSpec struct {
	// Index is the zero-based position of the part.
	Index int

	// Start is the first line index included in the part.
	Start int

	// End is one past the last line index included in the part.
	End int
}

// Size returns the number of lines in the part.
func (p PartSpec) Size() int {
	return p.End - p.Start
}

// Number returns the one-based part number used in output file names.
func (p PartSpec) Number() int {
	return p.Index + 1
}

// Partition divides totalLines into numParts contiguous ranges.
// The first totalLines%numParts parts receive one extra line, so no two
// parts differ in size by more than one and the ranges cover every line
// exactly once. When numParts exceeds totalLines the trailing parts are empty.
func Partition(totalLines, numParts int) ([]PartSpec, error) {
	if numParts <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPartCount, numParts)
	}
	if totalLines < 0 {
		return nil, fmt.Errorf("%w: negative line count %d", ErrInvalidInput, totalLines)
	}

	partSize := totalLines / numParts
	remainder := totalLines % numParts

	parts := make([]PartSpec, numParts)
	start := 0
	for i := 0; i < numParts; i++ {
		size := partSize
		if i < remainder {
			size++
		}
		parts[i] = PartSpec{Index: i, Start: start, End: start + size}
		start += size
	}

	return parts, nil
}

// ParsePartCount parses a part count typed by a user.
// Surrounding whitespace is ignored; anything that is not a positive
// integer yields ErrInvalidPartCount.
func ParsePartCount(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidPartCount)
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidPartCount, trimmed)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPartCount, n)
	}

	return n, nil
}
