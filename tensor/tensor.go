// Copyright 2025 The Spindle Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for symmetry-blocked tensor
// operations in Spindle.
//
// The package defines the core types for point-group adapted work:
//   - Tensor[T]: rank-generic blocked tensor with irrep-selected storage
//   - Matrix[T], Vector: rank-2 overlay and the legacy blocked vector
//   - Dimension, Slice, Operation: per-irrep extents, ranges, transposes
//
// Example:
//
//	occ := tensor.Dimension{3, 0, 1, 1}
//	f, _ := tensor.NewMatrix[float64]("Fock", 0, occ, occ)
//	s, _ := tensor.NewMatrix[float64]("Overlap", 0, occ, occ)
//	fs, _ := tensor.Doublet(f.Tensor, s.Tensor, tensor.NoTrans, tensor.NoTrans)
package tensor

import (
	"github.com/spindle-qc/spindle/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, complex128.
type DType = tensor.DType

// DataType represents the underlying element type of a tensor.
type DataType = tensor.DataType

// Element type constants.
const (
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Complex128 DataType = tensor.Complex128
)

// Dimension holds one extent per irreducible representation.
// Example: Dimension{3, 0, 1, 1} spans four irreps with five basis
// functions in total.
type Dimension = tensor.Dimension

// Operation selects how an operand enters a blockwise product.
type Operation = tensor.Operation

// Operand transformations.
const (
	NoTrans   Operation = tensor.NoTrans
	Trans     Operation = tensor.Trans
	ConjTrans Operation = tensor.ConjTrans
)

// BlockShape pairs the axis irreps of one stored block with the
// matching extents.
type BlockShape = tensor.BlockShape

// Tensor is a rank-generic symmetry-blocked tensor.
//
// T is the element type (float32, float64, complex128). One block is
// stored per irrep combination whose direct product equals the
// tensor's symmetry; every other block is identically zero and never
// allocated. Storage is reference-counted: Clone shares it, Copy
// duplicates it, Release drops a reference.
//
// Example:
//
//	x, _ := tensor.New[float64]("T2", 0, occ, virt)
//	y := tensor.ZerosLike(x)
//	z, _ := tensor.Doublet(x, y, tensor.Trans, tensor.NoTrans)
type Tensor[T DType] = tensor.Tensor[T]

// Errors reported by blocked-tensor operations. Match with errors.Is.
var (
	ErrBadDimension      = tensor.ErrBadDimension
	ErrNirrepMismatch    = tensor.ErrNirrepMismatch
	ErrSymmetryRange     = tensor.ErrSymmetryRange
	ErrIrrepRange        = tensor.ErrIrrepRange
	ErrBlockNotLive      = tensor.ErrBlockNotLive
	ErrRank              = tensor.ErrRank
	ErrShapeMismatch     = tensor.ErrShapeMismatch
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
	ErrSliceRange        = tensor.ErrSliceRange
	ErrSingleIrrep       = tensor.ErrSingleIrrep
	ErrViewType          = tensor.ErrViewType
	ErrEmptyBlock        = tensor.ErrEmptyBlock
)

// Creation functions

// NewDimension returns a zero-filled Dimension spanning nirrep irreps.
func NewDimension(nirrep int) Dimension {
	return tensor.NewDimension(nirrep)
}

// New creates a zero-filled blocked tensor with one axis Dimension per
// rank.
//
// Example:
//
//	t2, err := tensor.New[float64]("T2", 0, occ, occ, virt, virt)
func New[T DType](label string, symmetry int, axes ...Dimension) (*Tensor[T], error) {
	return tensor.New[T](label, symmetry, axes...)
}

// Full creates a blocked tensor with every stored element set to fill.
func Full[T DType](label string, symmetry int, fill T, axes ...Dimension) (*Tensor[T], error) {
	return tensor.Full(label, symmetry, fill, axes...)
}

// FullLike creates a tensor with proto's label, symmetry, and axes,
// every stored element set to fill.
func FullLike[T DType](proto *Tensor[T], fill T) *Tensor[T] {
	return tensor.FullLike(proto, fill)
}

// ZerosLike creates a zero-filled tensor shaped like proto.
func ZerosLike[T DType](proto *Tensor[T]) *Tensor[T] {
	return tensor.ZerosLike(proto)
}

// OnesLike creates a one-filled tensor shaped like proto.
func OnesLike[T DType](proto *Tensor[T]) *Tensor[T] {
	return tensor.OnesLike(proto)
}
