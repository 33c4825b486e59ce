// Package tensor implements symmetry-blocked vectors, matrices, and
// rank-generic tensors for point-group adapted numerical work.
package tensor

// DType constrains tensor elements to the supported numeric types:
// single and double precision reals and double precision complex.
type DType interface {
	~float32 | ~float64 | ~complex128
}

// DataType identifies an element type at runtime, for callers that
// hold a tensor behind a non-generic interface.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
	Complex128
)

// Size returns the width of one element in bytes.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// IsComplex reports whether elements carry an imaginary part.
func (dt DataType) IsComplex() bool {
	return dt == Complex128
}

func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// dtypeOf resolves the runtime DataType of a type parameter.
func dtypeOf[T DType]() DataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex128:
		return Complex128
	default:
		panic("unsupported element type")
	}
}
