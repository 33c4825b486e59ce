package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a rank-2 overlay over Tensor adding row/column accessors,
// structured block writes, and per-irrep dense views. Block h holds the
// rows of irrep h; its columns live in irrep h x Symmetry, so the block
// is shaped Rows(h) by Cols(h x Symmetry).
type Matrix[T DType] struct {
	*Tensor[T]
}

// NewMatrix creates a zero-filled blocked matrix with the given row and
// column dimensions.
func NewMatrix[T DType](label string, symmetry int, rowspi, colspi Dimension) (*Matrix[T], error) {
	t, err := New[T](label, symmetry, rowspi, colspi)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{Tensor: t}, nil
}

// AsMatrix wraps a rank-2 tensor in the matrix overlay. The overlay is
// a second handle on the same tensor, not a copy.
func AsMatrix[T DType](t *Tensor[T]) (*Matrix[T], error) {
	if t.Rank() != 2 {
		return nil, fmt.Errorf("matrix over %q: rank %d: %w", t.Label(), t.Rank(), ErrRank)
	}
	return &Matrix[T]{Tensor: t}, nil
}

// Rows returns the row extent of irrep h.
// Panics if h is out of range.
func (m *Matrix[T]) Rows(h int) int {
	return m.axes[0].At(h)
}

// Cols returns the column extent of irrep h.
// Panics if h is out of range.
func (m *Matrix[T]) Cols(h int) int {
	return m.axes[1].At(h)
}

// RowDim returns a copy of the per-irrep row extents.
func (m *Matrix[T]) RowDim() Dimension {
	return m.axes[0].Clone()
}

// ColDim returns a copy of the per-irrep column extents.
func (m *Matrix[T]) ColDim() Dimension {
	return m.axes[1].Clone()
}

// At returns element (i, j) of block h.
// Panics on any out-of-range index.
func (m *Matrix[T]) At(h, i, j int) T {
	idx := m.elemIndex(h, i, j)
	return m.blockAt(h)[idx]
}

// Set stores val as element (i, j) of block h.
// Panics on any out-of-range index.
func (m *Matrix[T]) Set(h, i, j int, val T) {
	idx := m.elemIndex(h, i, j)
	m.blockAt(h)[idx] = val
}

// SetBlockRows replaces block h with the given rows. The row count and
// every row length must match the block shape exactly; on any mismatch
// the matrix is left untouched.
func (m *Matrix[T]) SetBlockRows(h int, rows [][]T) error {
	if h < 0 || h >= m.Nirrep() {
		return fmt.Errorf("set block %d of %q: %d irreps: %w", h, m.label, m.Nirrep(), ErrIrrepRange)
	}
	nr := m.axes[0].At(h)
	nc := m.axes[1].At(h ^ m.symmetry)
	if len(rows) != nr {
		return fmt.Errorf("set block %d of %q: %d rows, want %d: %w",
			h, m.label, len(rows), nr, ErrShapeMismatch)
	}
	for i, row := range rows {
		if len(row) != nc {
			return fmt.Errorf("set block %d of %q: row %d has %d columns, want %d: %w",
				h, m.label, i, len(row), nc, ErrShapeMismatch)
		}
	}
	block := m.blockAt(h)
	for i, row := range rows {
		copy(block[i*nc:(i+1)*nc], row)
	}
	return nil
}

// GetBlock copies a windowed region into a new matrix: rows selects the
// per-irrep row ranges, cols the per-irrep column ranges.
func (m *Matrix[T]) GetBlock(rows, cols Slice) (*Matrix[T], error) {
	if err := rows.fits(m.axes[0]); err != nil {
		return nil, fmt.Errorf("get block of %q: rows: %w", m.label, err)
	}
	if err := cols.fits(m.axes[1]); err != nil {
		return nil, fmt.Errorf("get block of %q: cols: %w", m.label, err)
	}
	out, err := NewMatrix[T](m.label, m.symmetry, rows.Extents(), cols.Extents())
	if err != nil {
		return nil, fmt.Errorf("get block of %q: %w", m.label, err)
	}
	for h := 0; h < m.Nirrep(); h++ {
		hc := h ^ m.symmetry
		srcCols := m.axes[1].At(hc)
		dstRows := out.axes[0].At(h)
		dstCols := out.axes[1].At(hc)
		src := m.blockAt(h)
		dst := out.blockAt(h)
		for i := 0; i < dstRows; i++ {
			si := (rows.begin[h]+i)*srcCols + cols.begin[hc]
			copy(dst[i*dstCols:(i+1)*dstCols], src[si:si+dstCols])
		}
	}
	return out, nil
}

// SetBlock copies src into a windowed region. The source must carry the
// same symmetry and exactly the slice extents; on any error the matrix
// is left untouched.
func (m *Matrix[T]) SetBlock(rows, cols Slice, src *Matrix[T]) error {
	if err := rows.fits(m.axes[0]); err != nil {
		return fmt.Errorf("set block of %q: rows: %w", m.label, err)
	}
	if err := cols.fits(m.axes[1]); err != nil {
		return fmt.Errorf("set block of %q: cols: %w", m.label, err)
	}
	if src.symmetry != m.symmetry {
		return fmt.Errorf("set block of %q: source symmetry %d, want %d: %w",
			m.label, src.symmetry, m.symmetry, ErrDimensionMismatch)
	}
	if !src.axes[0].Equal(rows.Extents()) || !src.axes[1].Equal(cols.Extents()) {
		return fmt.Errorf("set block of %q: source %s x %s does not match slices %s x %s: %w",
			m.label, src.axes[0], src.axes[1], rows.Extents(), cols.Extents(), ErrShapeMismatch)
	}
	for h := 0; h < m.Nirrep(); h++ {
		hc := h ^ m.symmetry
		dstCols := m.axes[1].At(hc)
		srcRows := src.axes[0].At(h)
		srcCols := src.axes[1].At(hc)
		dst := m.blockAt(h)
		from := src.blockAt(h)
		for i := 0; i < srcRows; i++ {
			di := (rows.begin[h]+i)*dstCols + cols.begin[hc]
			copy(dst[di:di+srcCols], from[i*srcCols:(i+1)*srcCols])
		}
	}
	return nil
}

// Identity sets the matrix to the blocked identity. Requires symmetry 0
// and equal row and column dimensions.
func (m *Matrix[T]) Identity() error {
	if m.symmetry != 0 || !m.axes[0].Equal(m.axes[1]) {
		return fmt.Errorf("identity on %q: diagonal blocks are not square: %w", m.label, ErrShapeMismatch)
	}
	m.Zero()
	for h := 0; h < m.Nirrep(); h++ {
		n := m.axes[0].At(h)
		block := m.blockAt(h)
		for i := 0; i < n; i++ {
			block[i*n+i] = 1
		}
	}
	return nil
}

// Transpose returns a new matrix with rows and columns exchanged in
// every block.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	t, err := Transpose(m.Tensor)
	if err != nil {
		panic(err) // receiver is rank 2 by construction
	}
	return &Matrix[T]{Tensor: t}
}

// Clone returns a matrix overlay sharing this matrix's storage, with
// its own reference.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{Tensor: m.Tensor.Clone()}
}

// Copy returns a deep copy with freshly owned storage.
func (m *Matrix[T]) Copy() *Matrix[T] {
	return &Matrix[T]{Tensor: m.Tensor.Copy()}
}

// Dense returns a zero-copy gonum view of block h, available for
// float64 elements only. Mutations through the view are visible in the
// matrix.
func (m *Matrix[T]) Dense(h int) (*mat.Dense, error) {
	if h < 0 || h >= m.Nirrep() {
		return nil, fmt.Errorf("dense view of %q block %d: %d irreps: %w",
			m.label, h, m.Nirrep(), ErrIrrepRange)
	}
	data, ok := any(m.blockAt(h)).([]float64)
	if !ok {
		return nil, fmt.Errorf("dense view of %q: %s elements: %w", m.label, m.DType(), ErrViewType)
	}
	nr := m.axes[0].At(h)
	nc := m.axes[1].At(h ^ m.symmetry)
	if nr == 0 || nc == 0 {
		return nil, fmt.Errorf("dense view of %q block %d: %w", m.label, h, ErrEmptyBlock)
	}
	return mat.NewDense(nr, nc, data), nil
}

// CDense returns a zero-copy gonum view of block h, available for
// complex128 elements only. Mutations through the view are visible in
// the matrix.
func (m *Matrix[T]) CDense(h int) (*mat.CDense, error) {
	if h < 0 || h >= m.Nirrep() {
		return nil, fmt.Errorf("dense view of %q block %d: %d irreps: %w",
			m.label, h, m.Nirrep(), ErrIrrepRange)
	}
	data, ok := any(m.blockAt(h)).([]complex128)
	if !ok {
		return nil, fmt.Errorf("dense view of %q: %s elements: %w", m.label, m.DType(), ErrViewType)
	}
	nr := m.axes[0].At(h)
	nc := m.axes[1].At(h ^ m.symmetry)
	if nr == 0 || nc == 0 {
		return nil, fmt.Errorf("dense view of %q block %d: %w", m.label, h, ErrEmptyBlock)
	}
	return mat.NewCDense(nr, nc, data), nil
}

// elemIndex resolves (block, row, column) into a block-local offset,
// panicking on out-of-range input.
func (m *Matrix[T]) elemIndex(h, i, j int) int {
	nr := m.axes[0].At(h)
	nc := m.axes[1].At(h ^ m.symmetry)
	if i < 0 || i >= nr {
		panic(fmt.Sprintf("row %d out of range for block %d of %d rows", i, h, nr))
	}
	if j < 0 || j >= nc {
		panic(fmt.Sprintf("column %d out of range for block %d of %d columns", j, h, nc))
	}
	return i*nc + j
}
