package tensor

// Full creates a blocked tensor with every stored element set to fill.
//
// Example:
//
//	t, err := tensor.Full("F", 0, 1.0, tensor.Dimension{2, 1}, tensor.Dimension{2, 1})
func Full[T DType](label string, symmetry int, fill T, axes ...Dimension) (*Tensor[T], error) {
	t, err := New[T](label, symmetry, axes...)
	if err != nil {
		return nil, err
	}
	data := t.store.data
	for i := range data {
		data[i] = fill
	}
	return t, nil
}

// FullLike creates a tensor with proto's label, axes, and symmetry and
// every stored element set to fill. The result shares no storage with
// proto and none of proto's data is copied.
func FullLike[T DType](proto *Tensor[T], fill T) *Tensor[T] {
	t, err := Full(proto.label, proto.symmetry, fill, proto.axes...)
	if err != nil {
		panic(err) // proto was validated at construction
	}
	return t
}

// ZerosLike creates a zero tensor shaped like proto.
func ZerosLike[T DType](proto *Tensor[T]) *Tensor[T] {
	var zero T
	return FullLike(proto, zero)
}

// OnesLike creates a tensor of ones shaped like proto.
func OnesLike[T DType](proto *Tensor[T]) *Tensor[T] {
	return FullLike(proto, 1)
}
