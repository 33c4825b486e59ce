package tensor

import "gonum.org/v1/gonum/blas"

// Operation selects how a doublet or triplet operand enters the
// contraction.
type Operation int

// Operand transformations.
const (
	// NoTrans uses the operand as stored.
	NoTrans Operation = iota
	// Trans uses the operand's transpose.
	Trans
	// ConjTrans uses the operand's conjugate transpose. For real
	// element types it is observably identical to Trans.
	ConjTrans
)

// String returns a human-readable name for the operation.
func (op Operation) String() string {
	switch op {
	case NoTrans:
		return "NoTrans"
	case Trans:
		return "Trans"
	case ConjTrans:
		return "ConjTrans"
	default:
		return "unknown"
	}
}

// transposes reports whether the operation swaps the operand's row and
// column axes.
func (op Operation) transposes() bool {
	return op == Trans || op == ConjTrans
}

// blasTranspose maps the operation onto the BLAS transpose flag.
func (op Operation) blasTranspose() blas.Transpose {
	switch op {
	case NoTrans:
		return blas.NoTrans
	case Trans:
		return blas.Trans
	case ConjTrans:
		return blas.ConjTrans
	default:
		panic("unknown operation")
	}
}

// opFromBool maps the legacy boolean transpose convention onto an
// Operation.
func opFromBool(trans bool) Operation {
	if trans {
		return Trans
	}
	return NoTrans
}
