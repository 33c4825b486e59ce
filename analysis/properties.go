package analysis

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/spindle-qc/spindle/pointgroup"
	"github.com/spindle-qc/spindle/tensor"
)

// ErrEigenFailed reports a symmetric eigendecomposition that did not
// converge.
var ErrEigenFailed = errors.New("analysis: eigendecomposition failed")

// Dipole evaluates the electronic dipole from a density matrix and the
// three Cartesian dipole integral matrices: -<D, mu_c> per component.
// Every operand must share blocking and symmetry.
func Dipole(opdm *tensor.Matrix[float64], mu [3]*tensor.Matrix[float64]) ([3]float64, error) {
	var out [3]float64
	for c, comp := range mu {
		d, err := tensor.Dot(opdm.Tensor, comp.Tensor)
		if err != nil {
			return out, fmt.Errorf("dipole component %d: %w", c, err)
		}
		out[c] = -d
	}
	return out, nil
}

// NaturalOccupations diagonalizes a totally symmetric blocked density
// matrix and returns the per-irrep eigenvalues in descending order.
// Empty irreps yield empty slices.
func NaturalOccupations(opdm *tensor.Matrix[float64]) ([][]float64, error) {
	if opdm.Symmetry() != 0 || !opdm.RowDim().Equal(opdm.ColDim()) {
		return nil, fmt.Errorf("natural occupations of %q: diagonal blocks are not square: %w",
			opdm.Label(), tensor.ErrShapeMismatch)
	}
	occs := make([][]float64, opdm.Nirrep())
	for h := 0; h < opdm.Nirrep(); h++ {
		n := opdm.Rows(h)
		occs[h] = []float64{}
		if n == 0 {
			continue
		}
		block, err := opdm.Block(h)
		if err != nil {
			return nil, fmt.Errorf("natural occupations of %q: %w", opdm.Label(), err)
		}
		var eig mat.EigenSym
		if !eig.Factorize(mat.NewSymDense(n, block), false) {
			return nil, fmt.Errorf("natural occupations of %q block %d: %w",
				opdm.Label(), h, ErrEigenFailed)
		}
		vals := eig.Values(nil) // ascending
		for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
			vals[i], vals[j] = vals[j], vals[i]
		}
		occs[h] = vals
	}
	return occs, nil
}

// PrintOccupations writes the per-irrep natural occupations with the
// group's irrep labels.
func PrintOccupations(w io.Writer, g pointgroup.Group, occs [][]float64) {
	fmt.Fprintln(w, "  Natural occupations:")
	for h, vals := range occs {
		if len(vals) == 0 {
			continue
		}
		fmt.Fprintf(w, "    %-4s", g.IrrepLabel(h))
		for _, v := range vals {
			fmt.Fprintf(w, " %10.6f", v)
		}
		fmt.Fprintln(w)
	}
}
