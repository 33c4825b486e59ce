// Package orbitals provides orbital-space bookkeeping for blocked
// tensor drivers: per-irrep occupied and virtual dimensions, composite
// pair spaces, and a lifecycle-scoped tensor cache.
package orbitals

import (
	"errors"
	"fmt"
	"io"

	"github.com/spindle-qc/spindle/pointgroup"
	"github.com/spindle-qc/spindle/tensor"
)

// ErrGroupMismatch reports a dimension that does not span the group's
// irreps.
var ErrGroupMismatch = errors.New("orbitals: dimension does not span the group")

// Spaces fixes the orbital partitioning of a calculation: per-irrep
// occupied and virtual extents under one point group.
type Spaces struct {
	group  pointgroup.Group
	occpi  tensor.Dimension
	virtpi tensor.Dimension
}

// NewSpaces validates the partitioning against the group.
func NewSpaces(g pointgroup.Group, occpi, virtpi tensor.Dimension) (*Spaces, error) {
	if occpi.Nirrep() != g.Nirrep() || virtpi.Nirrep() != g.Nirrep() {
		return nil, fmt.Errorf("spaces under %s: occupied %s, virtual %s: %w",
			g, occpi, virtpi, ErrGroupMismatch)
	}
	if err := occpi.Validate(); err != nil {
		return nil, fmt.Errorf("spaces under %s: occupied: %w", g, err)
	}
	if err := virtpi.Validate(); err != nil {
		return nil, fmt.Errorf("spaces under %s: virtual: %w", g, err)
	}
	return &Spaces{group: g, occpi: occpi.Clone(), virtpi: virtpi.Clone()}, nil
}

// Group returns the point group.
func (s *Spaces) Group() pointgroup.Group {
	return s.group
}

// OccPi returns a copy of the per-irrep occupied extents.
func (s *Spaces) OccPi() tensor.Dimension {
	return s.occpi.Clone()
}

// VirtPi returns a copy of the per-irrep virtual extents.
func (s *Spaces) VirtPi() tensor.Dimension {
	return s.virtpi.Clone()
}

// NMOPi returns the per-irrep totals, occupied plus virtual.
func (s *Spaces) NMOPi() tensor.Dimension {
	total := s.occpi.Clone()
	for h := range total {
		total[h] += s.virtpi[h]
	}
	return total
}

// NOcc returns the total occupied count.
func (s *Spaces) NOcc() int {
	return s.occpi.Sum()
}

// NVirt returns the total virtual count.
func (s *Spaces) NVirt() int {
	return s.virtpi.Sum()
}

// NMO returns the total orbital count.
func (s *Spaces) NMO() int {
	return s.occpi.Sum() + s.virtpi.Sum()
}

// Print writes a per-irrep summary table.
func (s *Spaces) Print(w io.Writer) {
	fmt.Fprintf(w, "  %-6s %5s %5s %6s\n", "Irrep", "Occ", "Virt", "Total")
	for h := 0; h < s.group.Nirrep(); h++ {
		fmt.Fprintf(w, "  %-6s %5d %5d %6d\n",
			s.group.IrrepLabel(h), s.occpi[h], s.virtpi[h], s.occpi[h]+s.virtpi[h])
	}
	fmt.Fprintf(w, "  %-6s %5d %5d %6d\n", "Total", s.NOcc(), s.NVirt(), s.NMO())
}

// PairDim returns the composite pair extents of two spaces. Pair irrep
// h collects every (p, q) with p x q = h, so
// pair[h] = sum over p of a[p] * b[p x h].
func PairDim(a, b tensor.Dimension, g pointgroup.Group) (tensor.Dimension, error) {
	n := g.Nirrep()
	if a.Nirrep() != n || b.Nirrep() != n {
		return nil, fmt.Errorf("pair dimension under %s: %s x %s: %w", g, a, b, ErrGroupMismatch)
	}
	pair := tensor.NewDimension(n)
	for h := 0; h < n; h++ {
		for p := 0; p < n; p++ {
			pair[h] += a.At(p) * b.At(g.Product(p, h))
		}
	}
	return pair, nil
}
