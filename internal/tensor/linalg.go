package tensor

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/floats"
)

// Doublet multiplies two rank-2 blocked tensors: op(a) * op(b). The
// result carries the direct product of the operand symmetries, and each
// stored block is one GEMM pairing the operand blocks the symmetries
// select.
//
// Every irrep pairing is validated before any arithmetic: on error no
// partial result exists. Blocks with a zero extent contribute nothing
// and are skipped.
func Doublet[T DType](a, b *Tensor[T], opA, opB Operation) (*Tensor[T], error) {
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, fmt.Errorf("doublet %q x %q: rank %d x rank %d operands: %w",
			a.label, b.label, a.Rank(), b.Rank(), ErrRank)
	}
	if a.Nirrep() != b.Nirrep() {
		return nil, fmt.Errorf("doublet %q x %q: %d vs %d irreps: %w",
			a.label, b.label, a.Nirrep(), b.Nirrep(), ErrNirrepMismatch)
	}
	nirrep := a.Nirrep()
	rowsA, colsA := effectiveDims(a, opA)
	rowsB, colsB := effectiveDims(b, opB)
	for h := 0; h < nirrep; h++ {
		if colsA.At(h) != rowsB.At(h) {
			return nil, fmt.Errorf("doublet %q x %q: inner extents %d and %d in irrep %d: %w",
				a.label, b.label, colsA.At(h), rowsB.At(h), h, ErrDimensionMismatch)
		}
	}

	sym := a.symmetry ^ b.symmetry
	c, err := New[T](fmt.Sprintf("%s * %s", a.label, b.label), sym, rowsA, colsB)
	if err != nil {
		return nil, fmt.Errorf("doublet %q x %q: %w", a.label, b.label, err)
	}

	for h := 0; h < nirrep; h++ {
		m := rowsA.At(h)
		hb := h ^ a.symmetry // inner irrep
		k := colsA.At(hb)
		hc := h ^ sym // column irrep of the result block
		n := colsB.At(hc)
		if m == 0 || n == 0 || k == 0 {
			continue // result block is already zero
		}
		ga := h
		if opA.transposes() {
			ga = hb
		}
		gb := hb
		if opB.transposes() {
			gb = hb ^ b.symmetry
		}
		gemmBlock(opA.blasTranspose(), opB.blasTranspose(),
			a.blockAt(ga), a.axes[0].At(ga), a.axes[1].At(ga^a.symmetry),
			b.blockAt(gb), b.axes[0].At(gb), b.axes[1].At(gb^b.symmetry),
			c.blockAt(h), m, n)
	}
	return c, nil
}

// DoubletTrans is the boolean form of Doublet kept for callers of the
// older convention: true transposes the operand.
func DoubletTrans[T DType](a, b *Tensor[T], transA, transB bool) (*Tensor[T], error) {
	return Doublet(a, b, opFromBool(transA), opFromBool(transB))
}

// DoubletRC multiplies a real by a complex matrix, promoting the real
// operand to complex elements first.
func DoubletRC(a *Tensor[float64], b *Tensor[complex128], opA, opB Operation) (*Tensor[complex128], error) {
	ac := Promote(a)
	defer ac.Release()
	return Doublet(ac, b, opA, opB)
}

// DoubletCR multiplies a complex by a real matrix, promoting the real
// operand to complex elements first.
func DoubletCR(a *Tensor[complex128], b *Tensor[float64], opA, opB Operation) (*Tensor[complex128], error) {
	bc := Promote(b)
	defer bc.Release()
	return Doublet(a, bc, opA, opB)
}

// Triplet chains two doublets: op(a) * op(b) * op(c), with the boolean
// transpose convention.
func Triplet[T DType](a, b, c *Tensor[T], transA, transB, transC bool) (*Tensor[T], error) {
	ab, err := Doublet(a, b, opFromBool(transA), opFromBool(transB))
	if err != nil {
		return nil, fmt.Errorf("triplet: %w", err)
	}
	defer ab.Release()
	abc, err := Doublet(ab, c, NoTrans, opFromBool(transC))
	if err != nil {
		return nil, fmt.Errorf("triplet: %w", err)
	}
	abc.SetLabel(fmt.Sprintf("%s * %s * %s", a.label, b.label, c.label))
	return abc, nil
}

// Dot returns the Frobenius inner product of two identically blocked
// tensors. For complex elements the first operand enters conjugated.
func Dot[T DType](a, b *Tensor[T]) (T, error) {
	var zero T
	if a.Rank() != b.Rank() {
		return zero, fmt.Errorf("dot %q . %q: rank %d vs %d: %w",
			a.label, b.label, a.Rank(), b.Rank(), ErrRank)
	}
	if a.symmetry != b.symmetry {
		return zero, fmt.Errorf("dot %q . %q: symmetry %d vs %d: %w",
			a.label, b.label, a.symmetry, b.symmetry, ErrDimensionMismatch)
	}
	for i := range a.axes {
		if !a.axes[i].Equal(b.axes[i]) {
			return zero, fmt.Errorf("dot %q . %q: axis %d extents %s vs %s: %w",
				a.label, b.label, i, a.axes[i], b.axes[i], ErrDimensionMismatch)
		}
	}
	// Identical layouts make the blockwise sum a single pass over the
	// slabs.
	switch ad := any(a.store.data).(type) {
	case []float32:
		bd := any(b.store.data).([]float32)
		var sum float32
		for i, v := range ad {
			sum += v * bd[i]
		}
		return any(sum).(T), nil
	case []float64:
		bd := any(b.store.data).([]float64)
		return any(floats.Dot(ad, bd)).(T), nil
	case []complex128:
		bd := any(b.store.data).([]complex128)
		var sum complex128
		for i, v := range ad {
			sum += cmplx.Conj(v) * bd[i]
		}
		return any(sum).(T), nil
	}
	return zero, nil
}

// Transpose returns the explicit transpose of a rank-2 tensor: block
// (h', h) of the result is the elementwise transpose of block (h, h').
func Transpose[T DType](t *Tensor[T]) (*Tensor[T], error) {
	if t.Rank() != 2 {
		return nil, fmt.Errorf("transpose %q: rank %d: %w", t.label, t.Rank(), ErrRank)
	}
	out, err := New[T](t.label, t.symmetry, t.axes[1], t.axes[0])
	if err != nil {
		panic(err) // t was validated at construction
	}
	for h := 0; h < t.Nirrep(); h++ {
		hc := h ^ t.symmetry
		rows, cols := t.axes[0].At(h), t.axes[1].At(hc)
		src := t.blockAt(h)
		dst := out.blockAt(hc)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				dst[j*rows+i] = src[i*cols+j]
			}
		}
	}
	return out, nil
}

// Promote widens a real tensor to complex elements, preserving label,
// axes, symmetry, and data.
func Promote(t *Tensor[float64]) *Tensor[complex128] {
	c, err := New[complex128](t.label, t.symmetry, t.axes...)
	if err != nil {
		panic(err) // t was validated at construction
	}
	src := t.store.data
	dst := c.store.data
	for i, v := range src {
		dst[i] = complex(v, 0)
	}
	return c
}

// effectiveDims returns the row and column dimensions of op(t) for a
// rank-2 tensor.
func effectiveDims[T DType](t *Tensor[T], op Operation) (rows, cols Dimension) {
	if op.transposes() {
		return t.axes[1], t.axes[0]
	}
	return t.axes[0], t.axes[1]
}

// gemmBlock runs one blockwise GEMM: c = op(a) * op(b). The a and b
// extents are the stored shapes; the transpose flags are applied by the
// kernel. Row-major blocks use their column count as the stride.
func gemmBlock[T DType](tA, tB blas.Transpose, a []T, ar, ac int, b []T, br, bc int, c []T, cr, cc int) {
	switch ad := any(a).(type) {
	case []float32:
		blas32.Gemm(tA, tB, 1,
			blas32.General{Rows: ar, Cols: ac, Stride: ac, Data: ad},
			blas32.General{Rows: br, Cols: bc, Stride: bc, Data: any(b).([]float32)},
			0,
			blas32.General{Rows: cr, Cols: cc, Stride: cc, Data: any(c).([]float32)})
	case []float64:
		blas64.Gemm(tA, tB, 1,
			blas64.General{Rows: ar, Cols: ac, Stride: ac, Data: ad},
			blas64.General{Rows: br, Cols: bc, Stride: bc, Data: any(b).([]float64)},
			0,
			blas64.General{Rows: cr, Cols: cc, Stride: cc, Data: any(c).([]float64)})
	case []complex128:
		cblas128.Gemm(tA, tB, 1,
			cblas128.General{Rows: ar, Cols: ac, Stride: ac, Data: ad},
			cblas128.General{Rows: br, Cols: bc, Stride: bc, Data: any(b).([]complex128)},
			0,
			cblas128.General{Rows: cr, Cols: cc, Stride: cc, Data: any(c).([]complex128)})
	}
}
