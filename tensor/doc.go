// Copyright 2025 The Spindle Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides symmetry-blocked tensor algebra for
// point-group adapted numerical work.
//
// # Overview
//
// Blocked tensors are the fundamental data structure in Spindle. This
// package provides:
//   - Generic blocked tensors (Tensor[T]) of any rank
//   - Matrix[T] and Vector overlays with structured accessors
//   - Blockwise GEMM products via Doublet and Triplet
//   - Zero-copy gonum views of individual blocks
//
// # Basic Usage
//
//	import "github.com/spindle-qc/spindle/tensor"
//
//	func main() {
//	    // Water in C2v: 3 a1, 0 a2, 1 b1, 1 b2 occupied orbitals.
//	    occ := tensor.Dimension{3, 0, 1, 1}
//
//	    f, _ := tensor.NewMatrix[float64]("Fock", 0, occ, occ)
//	    c, _ := tensor.NewMatrix[float64]("C", 0, occ, occ)
//	    c.Identity()
//
//	    // Transform blockwise: Ct F C.
//	    ft, _ := tensor.Triplet(c.Tensor, f.Tensor, c.Tensor, true, false, false)
//	    _ = ft
//	}
//
// # Symmetry Blocking
//
// Every tensor carries a symmetry label and one Dimension per axis. A
// block is stored only when the direct product of its axis irreps
// equals the tensor's symmetry; all other blocks are identically zero
// and never allocated. For abelian point groups the direct product is
// the bitwise XOR of the irrep ordinals, so a rank-2 tensor stores one
// block per irrep and a rank-R tensor nirrep^(R-1) blocks.
//
// Operations exploit the blocking. A Doublet runs one dense GEMM per
// stored output block, pairing exactly the operand blocks the
// symmetries select.
//
// # Supported Element Types
//
// The DType constraint admits:
//   - float32, float64 (real arithmetic)
//   - complex128 (response-theory quantities)
//
// Mixed real and complex products are available as DoubletRC and
// DoubletCR; Promote widens a real tensor to complex elements.
//
// # Memory Management
//
// Block storage is reference-counted. Clone shares the underlying
// slab and Copy duplicates it; Release drops a reference. Block and
// the gonum views (Dense, CDense, VecView) are zero-copy, so writes
// through them are visible to every holder.
//
// # Legacy Blocked Vector
//
// Vector predates the rank-generic Tensor and keeps its own layout:
// float64 elements with one block per irrep, all irreps allocated.
// New code that needs symmetry-carrying rank-1 data should use a
// rank-1 Tensor instead.
package tensor
