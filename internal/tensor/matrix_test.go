package tensor

import (
	"strings"
	"testing"
)

func mustNewMatrix(t *testing.T, label string, symmetry int, rowspi, colspi Dimension) *Matrix[float64] {
	t.Helper()
	m, err := NewMatrix[float64](label, symmetry, rowspi, colspi)
	assertNoError(t, err, "NewMatrix "+label)
	return m
}

func TestNewMatrixDims(t *testing.T) {
	m := mustNewMatrix(t, "S", 0, Dimension{2, 1}, Dimension{2, 3})
	if m.Rows(0) != 2 || m.Rows(1) != 1 || m.Cols(0) != 2 || m.Cols(1) != 3 {
		t.Errorf("Rows/Cols: %d %d %d %d", m.Rows(0), m.Rows(1), m.Cols(0), m.Cols(1))
	}
	assertEqualDimension(t, Dimension{2, 1}, m.RowDim(), "RowDim")
	assertEqualDimension(t, Dimension{2, 3}, m.ColDim(), "ColDim")

	rd := m.RowDim()
	rd[0] = 99
	assertEqualDimension(t, Dimension{2, 1}, m.RowDim(), "RowDim returns a copy")

	_, err := NewMatrix[float64]("bad", 2, Dimension{2, 1}, Dimension{2, 1})
	assertErrorIs(t, err, ErrSymmetryRange, "symmetry outside the irrep count")
}

func TestMatrixAtSet(t *testing.T) {
	// Block h pairs rows of irrep h with columns of irrep h^1.
	m := mustNewMatrix(t, "F", 1, Dimension{2, 1}, Dimension{1, 2})
	m.Set(0, 1, 1, 5)
	assertEqualFloat64(t, 5, m.At(0, 1, 1), "Set then At")
	m.Set(1, 0, 0, -3)
	assertEqualFloat64(t, -3, m.At(1, 0, 0), "off-diagonal block")

	b0, err := m.Block(0)
	assertNoError(t, err, "Block 0")
	assertEqualSlice(t, []float64{0, 0, 0, 5}, b0, "row-major layout")

	assertPanics(t, func() { m.At(0, 2, 0) }, "row out of range")
	assertPanics(t, func() { m.At(0, 0, 2) }, "column out of range")
	assertPanics(t, func() { m.At(1, 0, 1) }, "column past the symmetry-selected extent")
	assertPanics(t, func() { m.Set(5, 0, 0, 1) }, "block out of range")
}

func TestMatrixSetBlockRows(t *testing.T) {
	m := mustNewMatrix(t, "S", 0, Dimension{2, 1}, Dimension{2, 1})

	assertNoError(t, m.SetBlockRows(0, [][]float64{{1, 2}, {3, 4}}), "SetBlockRows")
	assertEqualFloat64(t, 3, m.At(0, 1, 0), "written element")

	err := m.SetBlockRows(0, [][]float64{{1, 2}})
	assertErrorIs(t, err, ErrShapeMismatch, "wrong row count")
	err = m.SetBlockRows(0, [][]float64{{1, 2}, {3}})
	assertErrorIs(t, err, ErrShapeMismatch, "ragged row")
	assertEqualFloat64(t, 3, m.At(0, 1, 0), "matrix untouched on error")

	err = m.SetBlockRows(2, [][]float64{{1}})
	assertErrorIs(t, err, ErrIrrepRange, "block out of range")
}

func TestMatrixGetBlock(t *testing.T) {
	m := mustNewMatrix(t, "S", 0, Dimension{3, 2}, Dimension{3, 2})
	assertNoError(t, m.SetBlockRows(0, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}), "fill block 0")
	assertNoError(t, m.SetBlockRows(1, [][]float64{{1, 2}, {3, 4}}), "fill block 1")

	rows, err := NewSlice(Dimension{1, 0}, Dimension{3, 1})
	assertNoError(t, err, "rows slice")
	cols, err := NewSlice(Dimension{0, 1}, Dimension{2, 2})
	assertNoError(t, err, "cols slice")

	w, err := m.GetBlock(rows, cols)
	assertNoError(t, err, "GetBlock")
	assertEqualDimension(t, Dimension{2, 1}, w.RowDim(), "window rows")
	assertEqualDimension(t, Dimension{2, 1}, w.ColDim(), "window cols")
	b0, err := w.Block(0)
	assertNoError(t, err, "window block 0")
	assertEqualSlice(t, []float64{4, 5, 7, 8}, b0, "windowed rows and columns")
	b1, err := w.Block(1)
	assertNoError(t, err, "window block 1")
	assertEqualSlice(t, []float64{2}, b1, "windowed second block")

	past, err := NewSlice(Dimension{0, 0}, Dimension{4, 1})
	assertNoError(t, err, "past slice")
	_, err = m.GetBlock(past, cols)
	assertErrorIs(t, err, ErrSliceRange, "row slice past extent")
	_, err = m.GetBlock(rows, past)
	assertErrorIs(t, err, ErrSliceRange, "column slice past extent")
}

func TestMatrixSetBlockWindow(t *testing.T) {
	m := mustNewMatrix(t, "S", 0, Dimension{3, 2}, Dimension{3, 2})
	assertNoError(t, m.SetBlockRows(0, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}), "fill block 0")
	assertNoError(t, m.SetBlockRows(1, [][]float64{{1, 2}, {3, 4}}), "fill block 1")

	rows, err := NewSlice(Dimension{1, 0}, Dimension{3, 1})
	assertNoError(t, err, "rows slice")
	cols, err := NewSlice(Dimension{0, 1}, Dimension{2, 2})
	assertNoError(t, err, "cols slice")

	src := mustNewMatrix(t, "patch", 0, Dimension{2, 1}, Dimension{2, 1})
	assertNoError(t, src.SetBlockRows(0, [][]float64{{-1, -2}, {-3, -4}}), "fill patch 0")
	assertNoError(t, src.SetBlockRows(1, [][]float64{{-5}}), "fill patch 1")

	assertNoError(t, m.SetBlock(rows, cols, src), "SetBlock")
	b0, err := m.Block(0)
	assertNoError(t, err, "block 0")
	assertEqualSlice(t, []float64{1, 2, 3, -1, -2, 6, -3, -4, 9}, b0, "patched block 0")
	b1, err := m.Block(1)
	assertNoError(t, err, "block 1")
	assertEqualSlice(t, []float64{1, -5, 3, 4}, b1, "patched block 1")

	skew := mustNewMatrix(t, "skew", 1, Dimension{2, 1}, Dimension{2, 1})
	err = m.SetBlock(rows, cols, skew)
	assertErrorIs(t, err, ErrDimensionMismatch, "source symmetry must match")

	wrong := mustNewMatrix(t, "wrong", 0, Dimension{1, 1}, Dimension{2, 1})
	err = m.SetBlock(rows, cols, wrong)
	assertErrorIs(t, err, ErrShapeMismatch, "source extents must match the slices")
	assertEqualFloat64(t, -1, m.At(0, 1, 0), "matrix untouched on error")
}

func TestMatrixIdentity(t *testing.T) {
	m := mustNewMatrix(t, "I", 0, Dimension{2, 1}, Dimension{2, 1})
	m.Set(0, 0, 1, 9)
	assertNoError(t, m.Identity(), "Identity")
	b0, err := m.Block(0)
	assertNoError(t, err, "block 0")
	assertEqualSlice(t, []float64{1, 0, 0, 1}, b0, "unit diagonal")
	assertEqualFloat64(t, 1, m.At(1, 0, 0), "second block")

	rect := mustNewMatrix(t, "R", 0, Dimension{2, 1}, Dimension{1, 2})
	assertErrorIs(t, rect.Identity(), ErrShapeMismatch, "non-square blocks")
	skew := mustNewMatrix(t, "K", 1, Dimension{2, 2}, Dimension{2, 2})
	assertErrorIs(t, skew.Identity(), ErrShapeMismatch, "nonzero symmetry")
}

func TestMatrixTranspose(t *testing.T) {
	m := mustNewMatrix(t, "A", 1, Dimension{2, 1}, Dimension{1, 2})
	assertNoError(t, m.SetBlockRows(0, [][]float64{{1, 2}, {3, 4}}), "fill block 0")
	assertNoError(t, m.SetBlockRows(1, [][]float64{{5}}), "fill block 1")

	mt := m.Transpose()
	if mt.Symmetry() != 1 {
		t.Errorf("Symmetry() = %d, want 1", mt.Symmetry())
	}
	assertEqualDimension(t, Dimension{1, 2}, mt.RowDim(), "transposed rows")
	assertEqualDimension(t, Dimension{2, 1}, mt.ColDim(), "transposed cols")
	assertEqualFloat64(t, 5, mt.At(0, 0, 0), "block 0 from block 1")
	assertEqualFloat64(t, 2, mt.At(1, 1, 0), "element (1, 0) was (0, 1)")
	assertEqualFloat64(t, 1, m.At(0, 0, 0), "original untouched")
}

func TestMatrixDense(t *testing.T) {
	m := mustNewMatrix(t, "F", 0, Dimension{2, 0}, Dimension{2, 0})
	assertNoError(t, m.SetBlockRows(0, [][]float64{{1, 2}, {3, 4}}), "fill block 0")

	d, err := m.Dense(0)
	assertNoError(t, err, "Dense")
	r, c := d.Dims()
	if r != 2 || c != 2 {
		t.Errorf("Dims() = %d x %d, want 2 x 2", r, c)
	}
	assertEqualFloat64(t, 3, d.At(1, 0), "view reads the block")
	d.Set(0, 0, 42)
	assertEqualFloat64(t, 42, m.At(0, 0, 0), "gonum view writes through")

	_, err = m.Dense(1)
	assertErrorIs(t, err, ErrEmptyBlock, "empty block has no view")
	_, err = m.Dense(7)
	assertErrorIs(t, err, ErrIrrepRange, "block out of range")
	_, err = m.CDense(0)
	assertErrorIs(t, err, ErrViewType, "complex view of real elements")
}

func TestMatrixCDense(t *testing.T) {
	m, err := NewMatrix[complex128]("Fc", 0, Dimension{1}, Dimension{1})
	assertNoError(t, err, "NewMatrix")
	m.Set(0, 0, 0, 2+3i)

	d, err := m.CDense(0)
	assertNoError(t, err, "CDense")
	if got := d.At(0, 0); got != 2+3i {
		t.Errorf("At(0,0) = %v, want (2+3i)", got)
	}
	d.Set(0, 0, 1i)
	if got := m.At(0, 0, 0); got != 1i {
		t.Errorf("At = %v after view write, want (0+1i)", got)
	}

	_, err = m.Dense(0)
	assertErrorIs(t, err, ErrViewType, "real view of complex elements")
}

func TestMatrixCloneCopy(t *testing.T) {
	m := mustNewMatrix(t, "S", 0, Dimension{2}, Dimension{2})
	assertNoError(t, m.SetBlockRows(0, [][]float64{{1, 2}, {3, 4}}), "fill")

	cl := m.Clone()
	if m.IsUnique() || cl.IsUnique() {
		t.Errorf("clone should share storage")
	}
	cl.Set(0, 0, 0, 42)
	assertEqualFloat64(t, 42, m.At(0, 0, 0), "clone writes are shared")
	cl.Release()
	if !m.IsUnique() {
		t.Errorf("release should return sole ownership")
	}

	cp := m.Copy()
	cp.Set(0, 1, 1, -4)
	assertEqualFloat64(t, 4, m.At(0, 1, 1), "copy does not alias")
	if !cp.IsUnique() {
		t.Errorf("copy should own its storage")
	}
}

func TestAsMatrix(t *testing.T) {
	tr, err := New[float64]("D", 0, Dimension{2, 1}, Dimension{2, 1})
	assertNoError(t, err, "New")
	m, err := AsMatrix(tr)
	assertNoError(t, err, "AsMatrix")
	m.Set(1, 0, 0, 8)
	b1, err := tr.Block(1)
	assertNoError(t, err, "Block 1")
	assertEqualSlice(t, []float64{8}, b1, "overlay writes the tensor")

	r1, err := New[float64]("v", 0, Dimension{2})
	assertNoError(t, err, "New rank 1")
	_, err = AsMatrix(r1)
	assertErrorIs(t, err, ErrRank, "rank 1 tensor")

	r3, err := New[float64]("t3", 0, Dimension{1}, Dimension{1}, Dimension{1})
	assertNoError(t, err, "New rank 3")
	_, err = AsMatrix(r3)
	assertErrorIs(t, err, ErrRank, "rank 3 tensor")
}

func TestMatrixPrint(t *testing.T) {
	m := mustNewMatrix(t, "overlap", 0, Dimension{2, 1}, Dimension{2, 1})
	assertNoError(t, m.SetBlockRows(0, [][]float64{{1, 0.5}, {0.5, 1}}), "fill")
	var sb strings.Builder
	m.Print(&sb)
	out := sb.String()
	for _, want := range []string{"## overlap (sym 0) ##", "block 0 (2 x 2)", "block 1 (1 x 1)", "0.5000000"} {
		if !strings.Contains(out, want) {
			t.Errorf("Print output missing %q:\n%s", want, out)
		}
	}
}
