package tensor

import (
	"fmt"
	"strings"
)

// Dimension holds per-irrep extents along one tensor axis. Entry h is
// the extent of the axis in irrep h; the number of entries is the order
// of the point group's irrep list.
type Dimension []int

// NewDimension returns a zero-filled Dimension spanning nirrep irreps.
func NewDimension(nirrep int) Dimension {
	return make(Dimension, nirrep)
}

// Nirrep returns the number of irreps the dimension spans.
func (d Dimension) Nirrep() int {
	return len(d)
}

// At returns the extent in irrep h.
// Panics if h is outside [0, Nirrep).
func (d Dimension) At(h int) int {
	if h < 0 || h >= len(d) {
		panic(fmt.Sprintf("irrep %d out of range for %d irreps", h, len(d)))
	}
	return d[h]
}

// Sum returns the total extent across all irreps.
func (d Dimension) Sum() int {
	n := 0
	for _, ext := range d {
		n += ext
	}
	return n
}

// Equal checks if two dimensions are equal.
func (d Dimension) Equal(other Dimension) bool {
	if len(d) != len(other) {
		return false
	}
	for h := range d {
		if d[h] != other[h] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the dimension.
func (d Dimension) Clone() Dimension {
	clone := make(Dimension, len(d))
	copy(clone, d)
	return clone
}

// Validate checks that the dimension spans at least one irrep and has
// no negative extents. Zero extents are legal: an axis may be empty in
// some irreps.
func (d Dimension) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("no irreps: %w", ErrBadDimension)
	}
	for h, ext := range d {
		if ext < 0 {
			return fmt.Errorf("negative extent %d in irrep %d: %w", ext, h, ErrBadDimension)
		}
	}
	return nil
}

// String renders the dimension as a bracketed extent list.
func (d Dimension) String() string {
	parts := make([]string, len(d))
	for h, ext := range d {
		parts[h] = fmt.Sprint(ext)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
