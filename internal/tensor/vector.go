package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector is the legacy blocked vector: float64 elements with one block
// per irrep, every irrep allocated regardless of symmetry. It mirrors
// the older API that predates the rank-generic Tensor, which is why it
// is not a Tensor overlay: a rank-1 Tensor stores a single block.
//
// Blocks are concatenated in increasing irrep order, so the flat
// accessors At and SetAt walk irreps in that order.
type Vector struct {
	name    string
	dimpi   Dimension
	data    []float64
	offsets []int
	hint    []int // optional flat-view shape, nil when unset
}

// NewVector creates a zero-filled blocked vector.
func NewVector(name string, dimpi Dimension) (*Vector, error) {
	if err := dimpi.Validate(); err != nil {
		return nil, fmt.Errorf("new vector %q: %w", name, err)
	}
	offsets := make([]int, dimpi.Nirrep()+1)
	for h, ext := range dimpi {
		offsets[h+1] = offsets[h] + ext
	}
	return &Vector{
		name:    name,
		dimpi:   dimpi.Clone(),
		data:    make([]float64, offsets[dimpi.Nirrep()]),
		offsets: offsets,
	}, nil
}

// Name returns the vector's name.
func (v *Vector) Name() string {
	return v.name
}

// SetName renames the vector.
func (v *Vector) SetName(name string) {
	v.name = name
}

// Nirrep returns the number of irrep blocks.
func (v *Vector) Nirrep() int {
	return v.dimpi.Nirrep()
}

// Dim returns the extent of irrep block h.
// Panics if h is out of range.
func (v *Vector) Dim(h int) int {
	return v.dimpi.At(h)
}

// Len returns the total number of elements across all blocks.
func (v *Vector) Len() int {
	return len(v.data)
}

// Dimpi returns a copy of the per-irrep extents.
func (v *Vector) Dimpi() Dimension {
	return v.dimpi.Clone()
}

// Block returns a zero-copy view of irrep block h.
// Panics if h is out of range.
func (v *Vector) Block(h int) []float64 {
	if h < 0 || h >= v.Nirrep() {
		panic(fmt.Sprintf("irrep %d out of range for %d irreps", h, v.Nirrep()))
	}
	return v.data[v.offsets[h]:v.offsets[h+1]]
}

// Get returns element m of irrep block h.
// Panics if h or m is out of range.
func (v *Vector) Get(h, m int) float64 {
	return v.data[v.elemIndex(h, m)]
}

// Set stores val as element m of irrep block h.
// Panics if h or m is out of range.
func (v *Vector) Set(h, m int, val float64) {
	v.data[v.elemIndex(h, m)] = val
}

// At returns element i of the concatenated blocks, walking irreps in
// increasing order. Panics if i is outside [0, Len).
func (v *Vector) At(i int) float64 {
	v.checkFlat(i)
	return v.data[i]
}

// SetAt stores val at flat position i.
// Panics if i is outside [0, Len).
func (v *Vector) SetAt(i int, val float64) {
	v.checkFlat(i)
	v.data[i] = val
}

// Zero sets every element to zero.
func (v *Vector) Zero() {
	clear(v.data)
}

// Scale multiplies every element by c in place.
func (v *Vector) Scale(c float64) {
	floats.Scale(c, v.data)
}

// AddScaled accumulates alpha * x into v.
func (v *Vector) AddScaled(alpha float64, x *Vector) error {
	if !v.dimpi.Equal(x.dimpi) {
		return fmt.Errorf("add scaled %q += %q: extents %s vs %s: %w",
			v.name, x.name, v.dimpi, x.dimpi, ErrDimensionMismatch)
	}
	floats.AddScaled(v.data, alpha, x.data)
	return nil
}

// Dot returns the inner product of two identically blocked vectors.
func (v *Vector) Dot(x *Vector) (float64, error) {
	if !v.dimpi.Equal(x.dimpi) {
		return 0, fmt.Errorf("dot %q . %q: extents %s vs %s: %w",
			v.name, x.name, v.dimpi, x.dimpi, ErrDimensionMismatch)
	}
	return floats.Dot(v.data, x.data), nil
}

// GetBlock copies the slice range out into a new vector.
func (v *Vector) GetBlock(s Slice) (*Vector, error) {
	if err := s.fits(v.dimpi); err != nil {
		return nil, fmt.Errorf("get block of %q: %w", v.name, err)
	}
	out, err := NewVector(v.name, s.Extents())
	if err != nil {
		return nil, fmt.Errorf("get block of %q: %w", v.name, err)
	}
	for h := 0; h < v.Nirrep(); h++ {
		copy(out.Block(h), v.data[v.offsets[h]+s.begin[h]:v.offsets[h]+s.end[h]])
	}
	return out, nil
}

// SetBlock copies src into the slice range. The source extents must
// match the slice exactly; on any error the vector is left untouched.
func (v *Vector) SetBlock(s Slice, src *Vector) error {
	if err := s.fits(v.dimpi); err != nil {
		return fmt.Errorf("set block of %q: %w", v.name, err)
	}
	if !src.dimpi.Equal(s.Extents()) {
		return fmt.Errorf("set block of %q: source extents %s do not match slice %s: %w",
			v.name, src.dimpi, s.Extents(), ErrShapeMismatch)
	}
	for h := 0; h < v.Nirrep(); h++ {
		copy(v.data[v.offsets[h]+s.begin[h]:v.offsets[h]+s.end[h]], src.Block(h))
	}
	return nil
}

// ShapeHint returns the flat-view shape set on the vector, or nil.
func (v *Vector) ShapeHint() []int {
	if v.hint == nil {
		return nil
	}
	return append([]int(nil), v.hint...)
}

// SetShapeHint records how a flat view of the vector should be
// reinterpreted, e.g. the row-by-column shape of a matrix flattened
// into it. The product of dims must equal Len.
func (v *Vector) SetShapeHint(dims ...int) error {
	n := 1
	for _, d := range dims {
		n *= d
	}
	if len(dims) == 0 || n != v.Len() {
		return fmt.Errorf("shape hint %v for %q of length %d: %w", dims, v.name, v.Len(), ErrShapeMismatch)
	}
	v.hint = append([]int(nil), dims...)
	return nil
}

// ArrayView returns the vector's elements as one zero-copy flat slice.
// A flat view is only well defined when a single irrep is stored; for
// more irreps the blocked structure has no flat equivalent and an error
// is returned.
func (v *Vector) ArrayView() ([]float64, error) {
	if v.Nirrep() != 1 {
		return nil, fmt.Errorf("array view of %q spanning %d irreps: %w",
			v.name, v.Nirrep(), ErrSingleIrrep)
	}
	return v.data, nil
}

// VecView returns a zero-copy gonum view of irrep block h. Mutations
// through the view are visible in the vector.
func (v *Vector) VecView(h int) (*mat.VecDense, error) {
	if h < 0 || h >= v.Nirrep() {
		return nil, fmt.Errorf("vec view of %q block %d: %d irreps: %w",
			v.name, h, v.Nirrep(), ErrIrrepRange)
	}
	if v.dimpi[h] == 0 {
		return nil, fmt.Errorf("vec view of %q block %d: %w", v.name, h, ErrEmptyBlock)
	}
	return mat.NewVecDense(v.dimpi[h], v.Block(h)), nil
}

// Copy returns a deep copy of the vector, including any shape hint.
func (v *Vector) Copy() *Vector {
	out, err := NewVector(v.name, v.dimpi)
	if err != nil {
		panic(err) // receiver was validated at construction
	}
	copy(out.data, v.data)
	if v.hint != nil {
		out.hint = append([]int(nil), v.hint...)
	}
	return out
}

// elemIndex resolves (irrep, element) into a flat index, panicking on
// out-of-range input.
func (v *Vector) elemIndex(h, m int) int {
	ext := v.dimpi.At(h)
	if m < 0 || m >= ext {
		panic(fmt.Sprintf("element %d out of range for irrep %d of extent %d", m, h, ext))
	}
	return v.offsets[h] + m
}

// checkFlat panics when a flat index falls outside the vector.
func (v *Vector) checkFlat(i int) {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("flat index %d out of range for length %d", i, len(v.data)))
	}
}
