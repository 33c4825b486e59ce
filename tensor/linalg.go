// Copyright 2025 The Spindle Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/spindle-qc/spindle/internal/tensor"
)

// Doublet multiplies two rank-2 blocked tensors: op(a) * op(b). The
// result carries the direct product of the operand symmetries.
//
// Example:
//
//	sc, err := tensor.Doublet(s, c, tensor.NoTrans, tensor.NoTrans)
func Doublet[T DType](a, b *Tensor[T], opA, opB Operation) (*Tensor[T], error) {
	return tensor.Doublet(a, b, opA, opB)
}

// DoubletTrans is the boolean form of Doublet: true transposes the
// operand.
func DoubletTrans[T DType](a, b *Tensor[T], transA, transB bool) (*Tensor[T], error) {
	return tensor.DoubletTrans(a, b, transA, transB)
}

// DoubletRC multiplies a real by a complex matrix, promoting the real
// operand first.
func DoubletRC(a *Tensor[float64], b *Tensor[complex128], opA, opB Operation) (*Tensor[complex128], error) {
	return tensor.DoubletRC(a, b, opA, opB)
}

// DoubletCR multiplies a complex by a real matrix, promoting the real
// operand first.
func DoubletCR(a *Tensor[complex128], b *Tensor[float64], opA, opB Operation) (*Tensor[complex128], error) {
	return tensor.DoubletCR(a, b, opA, opB)
}

// Triplet chains two doublets: op(a) * op(b) * op(c), with the boolean
// transpose convention.
//
// Example:
//
//	// Similarity transform Ct F C.
//	ft, err := tensor.Triplet(c, f, c, true, false, false)
func Triplet[T DType](a, b, c *Tensor[T], transA, transB, transC bool) (*Tensor[T], error) {
	return tensor.Triplet(a, b, c, transA, transB, transC)
}

// Dot returns the Frobenius inner product of two identically blocked
// tensors. For complex elements the first operand enters conjugated.
func Dot[T DType](a, b *Tensor[T]) (T, error) {
	return tensor.Dot(a, b)
}

// Transpose returns the explicit transpose of a rank-2 blocked tensor.
func Transpose[T DType](t *Tensor[T]) (*Tensor[T], error) {
	return tensor.Transpose(t)
}

// Promote widens a real tensor to complex128 elements, preserving
// label, axes, symmetry, and data.
func Promote(t *Tensor[float64]) *Tensor[complex128] {
	return tensor.Promote(t)
}
