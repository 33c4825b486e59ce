// Copyright 2025 The Spindle Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/spindle-qc/spindle/internal/tensor"
)

// Matrix is a rank-2 overlay over Tensor adding row/column accessors,
// structured block writes, and per-irrep gonum views.
//
// Block h holds the rows of irrep h; its columns live in irrep
// h x Symmetry, so the block is shaped Rows(h) by Cols(h x Symmetry).
//
// Example:
//
//	f, _ := tensor.NewMatrix[float64]("Fock", 0, nmopi, nmopi)
//	f.Set(0, 0, 0, -20.55)
//	block, _ := f.Dense(0) // zero-copy *mat.Dense view
type Matrix[T DType] = tensor.Matrix[T]

// Vector is the legacy blocked vector: float64 elements with one block
// per irrep, every irrep allocated regardless of symmetry.
//
// New code that needs symmetry-carrying rank-1 data should use a
// rank-1 Tensor instead.
type Vector = tensor.Vector

// Slice is a per-irrep half-open index range [begin, end) used to
// address part of a blocked vector or matrix axis.
type Slice = tensor.Slice

// NewMatrix creates a zero-filled blocked matrix with the given row
// and column dimensions.
func NewMatrix[T DType](label string, symmetry int, rowspi, colspi Dimension) (*Matrix[T], error) {
	return tensor.NewMatrix[T](label, symmetry, rowspi, colspi)
}

// AsMatrix wraps a rank-2 tensor in the matrix overlay. The overlay is
// a second handle on the same tensor, not a copy.
func AsMatrix[T DType](t *Tensor[T]) (*Matrix[T], error) {
	return tensor.AsMatrix(t)
}

// NewVector creates a zero-filled blocked vector.
func NewVector(name string, dimpi Dimension) (*Vector, error) {
	return tensor.NewVector(name, dimpi)
}

// NewSlice builds a slice from per-irrep begin and end offsets. Every
// irrep must satisfy 0 <= begin <= end.
func NewSlice(begin, end Dimension) (Slice, error) {
	return tensor.NewSlice(begin, end)
}
