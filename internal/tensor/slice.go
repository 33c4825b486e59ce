package tensor

import "fmt"

// Slice is a per-irrep half-open index range [begin, end) used to
// address part of a blocked vector or matrix axis.
type Slice struct {
	begin Dimension
	end   Dimension
}

// NewSlice builds a slice from per-irrep begin and end offsets. Every
// irrep must satisfy 0 <= begin <= end.
func NewSlice(begin, end Dimension) (Slice, error) {
	if begin.Nirrep() != end.Nirrep() {
		return Slice{}, fmt.Errorf("slice: begin spans %d irreps, end %d: %w",
			begin.Nirrep(), end.Nirrep(), ErrNirrepMismatch)
	}
	for h := range begin {
		if begin[h] < 0 || end[h] < begin[h] {
			return Slice{}, fmt.Errorf("slice: bad range [%d, %d) in irrep %d: %w",
				begin[h], end[h], h, ErrSliceRange)
		}
	}
	return Slice{begin: begin.Clone(), end: end.Clone()}, nil
}

// Begin returns a copy of the per-irrep start offsets.
func (s Slice) Begin() Dimension {
	return s.begin.Clone()
}

// End returns a copy of the per-irrep end offsets.
func (s Slice) End() Dimension {
	return s.end.Clone()
}

// Extents returns the per-irrep lengths of the slice.
func (s Slice) Extents() Dimension {
	ext := make(Dimension, len(s.begin))
	for h := range ext {
		ext[h] = s.end[h] - s.begin[h]
	}
	return ext
}

// Nirrep returns the number of irreps the slice spans.
func (s Slice) Nirrep() int {
	return len(s.begin)
}

// String renders the slice as per-irrep ranges.
func (s Slice) String() string {
	return fmt.Sprintf("%s..%s", s.begin, s.end)
}

// fits checks the slice against the dimension it will be applied to.
func (s Slice) fits(d Dimension) error {
	if s.Nirrep() != d.Nirrep() {
		return fmt.Errorf("slice spans %d irreps, dimension %d: %w",
			s.Nirrep(), d.Nirrep(), ErrNirrepMismatch)
	}
	for h := range s.begin {
		if s.end[h] > d[h] {
			return fmt.Errorf("slice end %d past extent %d in irrep %d: %w",
				s.end[h], d[h], h, ErrSliceRange)
		}
	}
	return nil
}
