package tensor

import "errors"

// Package-level sentinel errors. Operations wrap these with context via
// fmt.Errorf("...: %w", err) so callers can match them with errors.Is.
var (
	// ErrBadDimension is returned when a dimension is empty or carries a
	// negative extent.
	ErrBadDimension = errors.New("tensor: invalid dimension")

	// ErrNirrepMismatch is returned when axes or operands disagree on the
	// number of irreps.
	ErrNirrepMismatch = errors.New("tensor: irrep count mismatch")

	// ErrSymmetryRange is returned when a symmetry label is outside
	// [0, nirrep).
	ErrSymmetryRange = errors.New("tensor: symmetry label out of range")

	// ErrIrrepRange is returned when a block address contains an irrep
	// outside [0, nirrep).
	ErrIrrepRange = errors.New("tensor: irrep index out of range")

	// ErrBlockNotLive is returned when a block address names a block the
	// symmetry label excludes from storage.
	ErrBlockNotLive = errors.New("tensor: block not allowed by symmetry")

	// ErrRank is returned when a tensor's rank does not fit an operation
	// or a block address.
	ErrRank = errors.New("tensor: bad rank")

	// ErrShapeMismatch is returned when supplied data does not match the
	// shape of its destination.
	ErrShapeMismatch = errors.New("tensor: block shape mismatch")

	// ErrDimensionMismatch is returned for incompatible operand
	// dimensions, e.g. a doublet whose inner extents differ in some
	// irrep.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrSliceRange is returned when a slice range does not fit inside
	// the dimension it is applied to.
	ErrSliceRange = errors.New("tensor: slice out of range")

	// ErrSingleIrrep is returned by flat views over data that spans more
	// than one irrep block.
	ErrSingleIrrep = errors.New("tensor: flat view requires a single irrep")

	// ErrViewType is returned when a typed foreign view is requested for
	// an element type it cannot represent.
	ErrViewType = errors.New("tensor: view not available for element type")

	// ErrEmptyBlock is returned when a dense view is requested for a
	// block with no elements.
	ErrEmptyBlock = errors.New("tensor: empty block")
)
