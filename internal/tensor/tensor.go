package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
)

// Tensor is a rank-generic, symmetry-blocked tensor with element type T.
//
// Each axis carries a Dimension of per-irrep extents and the whole
// tensor carries a symmetry irrep. Storage exists only for the blocks
// (h_1, ..., h_R) whose direct product h_1 x ... x h_R equals the
// symmetry; every other block is identically zero and owns no memory.
// Irreps combine by XOR, the direct-product rule for abelian point
// groups in the conventional irrep ordering. A rank-1 tensor therefore
// stores one block, a rank-2 tensor one block per row irrep, and a
// rank-R tensor nirrep^(R-1) blocks.
//
// Blocks are stored row-major, concatenated into one slab ordered by
// the irreps of the first R-1 axes. Tensors are not safe for concurrent
// mutation; callers own the single-writer discipline.
//
// Example:
//
//	rowspi := tensor.Dimension{2, 1}
//	colspi := tensor.Dimension{2, 1}
//	t, err := tensor.New[float64]("S", 0, rowspi, colspi)
//	// t.Dim() == 5: a 2x2 block in irrep 0 and a 1x1 block in irrep 1
type Tensor[T DType] struct {
	label    string
	symmetry int
	axes     []Dimension
	offsets  []int // slab offsets per stored block, one extra entry for the total
	store    *storage[T]
}

// New creates a zero-filled blocked tensor. Each Dimension in axes
// gives the per-irrep extents of one tensor axis; symmetry selects
// which blocks are stored.
func New[T DType](label string, symmetry int, axes ...Dimension) (*Tensor[T], error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("new tensor %q: at least one axis required: %w", label, ErrRank)
	}
	for a, ax := range axes {
		if err := ax.Validate(); err != nil {
			return nil, fmt.Errorf("new tensor %q: axis %d: %w", label, a, err)
		}
	}
	nirrep := axes[0].Nirrep()
	for a, ax := range axes[1:] {
		if ax.Nirrep() != nirrep {
			return nil, fmt.Errorf("new tensor %q: axis %d spans %d irreps, axis 0 spans %d: %w",
				label, a+1, ax.Nirrep(), nirrep, ErrNirrepMismatch)
		}
	}
	if symmetry < 0 || symmetry >= nirrep {
		return nil, fmt.Errorf("new tensor %q: symmetry %d out of [0, %d): %w",
			label, symmetry, nirrep, ErrSymmetryRange)
	}

	t := &Tensor[T]{
		label:    label,
		symmetry: symmetry,
		axes:     cloneAxes(axes),
	}
	numBlocks := 1
	for a := 0; a < len(axes)-1; a++ {
		numBlocks *= nirrep
	}
	t.offsets = make([]int, numBlocks+1)
	for o := 0; o < numBlocks; o++ {
		size := 1
		for a, h := range t.blockIrreps(o) {
			size *= t.axes[a][h]
		}
		t.offsets[o+1] = t.offsets[o] + size
	}
	t.store = newStorage[T](t.offsets[numBlocks])
	return t, nil
}

// Dim returns the total number of stored elements across all blocks.
func (t *Tensor[T]) Dim() int {
	return t.offsets[len(t.offsets)-1]
}

// Nirrep returns the number of irreps every axis spans.
func (t *Tensor[T]) Nirrep() int {
	return t.axes[0].Nirrep()
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.axes)
}

// Label returns the tensor's label.
func (t *Tensor[T]) Label() string {
	return t.label
}

// SetLabel renames the tensor. The label is metadata only.
func (t *Tensor[T]) SetLabel(label string) {
	t.label = label
}

// Symmetry returns the tensor's symmetry irrep. There is no setter:
// changing the symmetry would invalidate the whole block layout, so
// callers build a new tensor instead.
func (t *Tensor[T]) Symmetry() int {
	return t.symmetry
}

// DType returns the tensor's runtime data type.
func (t *Tensor[T]) DType() DataType {
	return dtypeOf[T]()
}

// AxisDim returns a copy of the per-irrep extents of one axis.
// Panics if axis is out of range.
func (t *Tensor[T]) AxisDim(axis int) Dimension {
	if axis < 0 || axis >= len(t.axes) {
		panic(fmt.Sprintf("axis %d out of range for rank %d", axis, len(t.axes)))
	}
	return t.axes[axis].Clone()
}

// Axes returns copies of all axis dimensions.
func (t *Tensor[T]) Axes() []Dimension {
	return cloneAxes(t.axes)
}

// BlockShape describes one stored block: the irrep of each axis and the
// matching extents.
type BlockShape struct {
	Irreps  []int
	Extents []int
}

// Shapes returns a descriptor row for every stored block, in storage
// order.
func (t *Tensor[T]) Shapes() []BlockShape {
	out := make([]BlockShape, t.numBlocks())
	for o := range out {
		irreps := t.blockIrreps(o)
		extents := make([]int, len(irreps))
		for a, h := range irreps {
			extents[a] = t.axes[a][h]
		}
		out[o] = BlockShape{Irreps: irreps, Extents: extents}
	}
	return out
}

// BlockShapeOf returns the extents of one block. The address follows
// the same rules as Block.
func (t *Tensor[T]) BlockShapeOf(hs ...int) ([]int, error) {
	ordinal, err := t.resolveBlock(hs)
	if err != nil {
		return nil, err
	}
	irreps := t.blockIrreps(ordinal)
	shape := make([]int, len(irreps))
	for a, h := range irreps {
		shape[a] = t.axes[a][h]
	}
	return shape, nil
}

// Block returns the stored data of one block as a zero-copy row-major
// slice. The address is the full irrep tuple for any rank; for rank 2
// a single irrep addresses the block with that row irrep, and for rank
// 1 the single irrep must equal the tensor's symmetry.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Block(hs ...int) ([]T, error) {
	ordinal, err := t.resolveBlock(hs)
	if err != nil {
		return nil, err
	}
	return t.blockAt(ordinal), nil
}

// SetBlock replaces the contents of one block with data, which must
// hold exactly the block's row-major element count. The tensor is left
// untouched on any error.
func (t *Tensor[T]) SetBlock(data []T, hs ...int) error {
	ordinal, err := t.resolveBlock(hs)
	if err != nil {
		return err
	}
	size := t.offsets[ordinal+1] - t.offsets[ordinal]
	if len(data) != size {
		return fmt.Errorf("tensor %q: block %v holds %d elements, got %d: %w",
			t.label, hs, size, len(data), ErrShapeMismatch)
	}
	copy(t.blockAt(ordinal), data)
	return nil
}

// Data returns the whole storage slab: every stored block concatenated
// in storage order.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.store.data
}

// Zero sets every stored element to zero.
func (t *Tensor[T]) Zero() {
	clear(t.store.data)
}

// Scale multiplies every stored element by c in place.
func (t *Tensor[T]) Scale(c T) {
	switch data := any(t.store.data).(type) {
	case []float32:
		cf := any(c).(float32)
		for i := range data {
			data[i] *= cf
		}
	case []float64:
		floats.Scale(any(c).(float64), data)
	case []complex128:
		cmplxs.Scale(any(c).(complex128), data)
	}
}

// Clone returns a tensor sharing this tensor's storage (shallow copy
// with reference counting). Writes through either handle are visible to
// both; each handle drops its reference with Release.
func (t *Tensor[T]) Clone() *Tensor[T] {
	t.store.retain()
	return &Tensor[T]{
		label:    t.label,
		symmetry: t.symmetry,
		axes:     cloneAxes(t.axes),
		offsets:  append([]int(nil), t.offsets...),
		store:    t.store,
	}
}

// Copy returns a deep copy with freshly owned storage.
func (t *Tensor[T]) Copy() *Tensor[T] {
	c, err := New[T](t.label, t.symmetry, t.axes...)
	if err != nil {
		panic(err) // receiver was validated at construction
	}
	copy(c.store.data, t.store.data)
	return c
}

// Release drops this handle's reference to the storage; the slab is
// freed when the last reference goes. Using the tensor after Release is
// a caller error.
func (t *Tensor[T]) Release() {
	t.store.release()
}

// IsUnique reports whether no other handle shares this storage.
func (t *Tensor[T]) IsUnique() bool {
	return t.store.isUnique()
}

// numBlocks returns the number of stored blocks, nirrep^(rank-1).
func (t *Tensor[T]) numBlocks() int {
	return len(t.offsets) - 1
}

// blockAt returns the slab segment of the block with the given storage
// ordinal.
func (t *Tensor[T]) blockAt(ordinal int) []T {
	return t.store.data[t.offsets[ordinal]:t.offsets[ordinal+1]]
}

// blockIrreps decodes a storage ordinal into the full irrep tuple of
// its block. The first rank-1 irreps are the ordinal's digits in base
// nirrep; the last irrep is fixed by the symmetry.
func (t *Tensor[T]) blockIrreps(ordinal int) []int {
	rank := t.Rank()
	n := t.Nirrep()
	hs := make([]int, rank)
	rem := ordinal
	for a := rank - 2; a >= 0; a-- {
		hs[a] = rem % n
		rem /= n
	}
	last := t.symmetry
	for a := 0; a < rank-1; a++ {
		last ^= hs[a]
	}
	hs[rank-1] = last
	return hs
}

// resolveBlock maps a block address onto its storage ordinal.
func (t *Tensor[T]) resolveBlock(hs []int) (int, error) {
	rank := t.Rank()
	n := t.Nirrep()
	if len(hs) == 1 && rank == 2 {
		h := hs[0]
		if h < 0 || h >= n {
			return 0, fmt.Errorf("tensor %q: irrep %d out of [0, %d): %w", t.label, h, n, ErrIrrepRange)
		}
		return h, nil
	}
	if len(hs) != rank {
		return 0, fmt.Errorf("tensor %q: block address has %d irreps for rank %d: %w",
			t.label, len(hs), rank, ErrRank)
	}
	prod := 0
	for a, h := range hs {
		if h < 0 || h >= n {
			return 0, fmt.Errorf("tensor %q: irrep %d out of [0, %d) on axis %d: %w",
				t.label, h, n, a, ErrIrrepRange)
		}
		prod ^= h
	}
	if prod != t.symmetry {
		return 0, fmt.Errorf("tensor %q: block %v not allowed by symmetry %d: %w",
			t.label, hs, t.symmetry, ErrBlockNotLive)
	}
	ordinal := 0
	for a := 0; a < rank-1; a++ {
		ordinal = ordinal*n + hs[a]
	}
	return ordinal, nil
}

// cloneAxes deep-copies a dimension list.
func cloneAxes(axes []Dimension) []Dimension {
	out := make([]Dimension, len(axes))
	for i, ax := range axes {
		out[i] = ax.Clone()
	}
	return out
}
