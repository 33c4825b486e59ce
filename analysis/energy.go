package analysis

import (
	"fmt"
	"io"

	"github.com/spindle-qc/spindle/tensor"
)

// PairEnergy contracts an amplitude matrix with a density-like matrix:
// coeff times their Frobenius inner product. The operands must share
// blocking and symmetry.
func PairEnergy(l, g *tensor.Matrix[float64], coeff float64) (float64, error) {
	d, err := tensor.Dot(l.Tensor, g.Tensor)
	if err != nil {
		return 0, fmt.Errorf("pair energy: %w", err)
	}
	return coeff * d, nil
}

// Term is one labeled energy contribution.
type Term struct {
	Label string
	Value float64
}

// EnergyReport assembles a reference energy and correlation terms into
// a printable total.
type EnergyReport struct {
	Reference float64
	Terms     []Term
}

// Add appends a labeled contribution.
func (r *EnergyReport) Add(label string, value float64) {
	r.Terms = append(r.Terms, Term{Label: label, Value: value})
}

// Total returns the reference energy plus every contribution.
func (r *EnergyReport) Total() float64 {
	total := r.Reference
	for _, term := range r.Terms {
		total += term.Value
	}
	return total
}

// Print writes the assembled energies as a table.
func (r *EnergyReport) Print(w io.Writer) {
	fmt.Fprintf(w, "  %-28s % .12f\n", "Reference energy", r.Reference)
	for _, term := range r.Terms {
		fmt.Fprintf(w, "  %-28s % .12f\n", term.Label, term.Value)
	}
	fmt.Fprintf(w, "  %-28s % .12f\n", "Total energy", r.Total())
}
