package tensor

import (
	"strings"
	"testing"
)

// mustVector builds a blocked vector and fills it with consecutive
// values 1, 2, 3, ... in flat order.
func mustVector(t *testing.T, name string, dimpi Dimension) *Vector {
	t.Helper()
	v, err := NewVector(name, dimpi)
	assertNoError(t, err, "NewVector "+name)
	for i := 0; i < v.Len(); i++ {
		v.SetAt(i, float64(i+1))
	}
	return v
}

func TestNewVectorValidation(t *testing.T) {
	v, err := NewVector("occ", Dimension{3, 0, 1, 1})
	assertNoError(t, err, "NewVector")
	if v.Len() != 5 || v.Nirrep() != 4 {
		t.Errorf("Len %d Nirrep %d, want 5 and 4", v.Len(), v.Nirrep())
	}
	if v.Dim(1) != 0 || v.Dim(2) != 1 {
		t.Errorf("Dim(1) = %d Dim(2) = %d, want 0 and 1", v.Dim(1), v.Dim(2))
	}

	_, err = NewVector("bad", Dimension{})
	assertErrorIs(t, err, ErrBadDimension, "empty dimension")
	_, err = NewVector("bad", Dimension{2, -1})
	assertErrorIs(t, err, ErrBadDimension, "negative extent")
}

func TestVectorName(t *testing.T) {
	v := mustVector(t, "eps", Dimension{2})
	if v.Name() != "eps" {
		t.Errorf("Name() = %q", v.Name())
	}
	v.SetName("eps(occ)")
	if v.Name() != "eps(occ)" {
		t.Errorf("Name() = %q after SetName", v.Name())
	}
}

func TestVectorDimpiCopies(t *testing.T) {
	dimpi := Dimension{2, 1}
	v := mustVector(t, "v", dimpi)
	dimpi[0] = 99
	if v.Dim(0) != 2 {
		t.Errorf("constructor aliased the caller's dimension")
	}
	got := v.Dimpi()
	got[0] = 99
	if v.Dim(0) != 2 {
		t.Errorf("Dimpi() aliased the internal dimension")
	}
}

func TestVectorGetSet(t *testing.T) {
	v := mustVector(t, "v", Dimension{2, 1})
	if v.Get(0, 1) != 2 || v.Get(1, 0) != 3 {
		t.Errorf("Get = %v, %v, want 2, 3", v.Get(0, 1), v.Get(1, 0))
	}
	v.Set(1, 0, 7.5)
	assertEqualFloat64(t, 7.5, v.Get(1, 0), "Set then Get")

	// Flat index 2 is the first element of the second block.
	assertEqualFloat64(t, v.Get(1, 0), v.At(2), "flat walk crosses blocks in irrep order")
	v.SetAt(0, -1)
	assertEqualFloat64(t, -1, v.Get(0, 0), "SetAt writes through to the block")

	assertPanics(t, func() { v.Get(2, 0) }, "irrep out of range")
	assertPanics(t, func() { v.Get(0, 2) }, "element out of range")
	assertPanics(t, func() { v.Set(1, 1, 0) }, "element past block extent")
	assertPanics(t, func() { v.At(3) }, "flat index past length")
	assertPanics(t, func() { v.SetAt(-1, 0) }, "negative flat index")
	assertPanics(t, func() { v.Block(5) }, "block out of range")
}

func TestVectorBlockIsView(t *testing.T) {
	v := mustVector(t, "v", Dimension{2, 1})
	b := v.Block(0)
	b[0] = 42
	assertEqualFloat64(t, 42, v.Get(0, 0), "block view writes through")
	assertEqualSlice(t, []float64{3}, v.Block(1), "second block")
}

func TestVectorScaleZero(t *testing.T) {
	v := mustVector(t, "v", Dimension{2, 1})
	v.Scale(2)
	assertEqualSlice(t, []float64{2, 4, 6}, v.Block(0)[:2], "scaled first block")
	assertEqualFloat64(t, 6, v.Get(1, 0), "scaled second block")
	v.Zero()
	for i := 0; i < v.Len(); i++ {
		assertEqualFloat64(t, 0, v.At(i), "zeroed")
	}
}

func TestVectorAddScaled(t *testing.T) {
	v := mustVector(t, "v", Dimension{2, 1})
	x := mustVector(t, "x", Dimension{2, 1})
	x.Scale(2) // 2, 4, 6
	assertNoError(t, v.AddScaled(3, x), "AddScaled")
	assertEqualSlice(t, []float64{7, 14}, v.Block(0), "v + 3x, first block")
	assertEqualSlice(t, []float64{21}, v.Block(1), "v + 3x, second block")

	y := mustVector(t, "y", Dimension{3})
	assertErrorIs(t, v.AddScaled(1, y), ErrDimensionMismatch, "mismatched extents")
}

func TestVectorDot(t *testing.T) {
	v := mustVector(t, "v", Dimension{2, 1}) // 1, 2, 3
	x := mustVector(t, "x", Dimension{2, 1}) // 1, 2, 3
	x.Set(0, 0, 4)
	x.Set(0, 1, 5)
	x.Set(1, 0, 6)

	d, err := v.Dot(x)
	assertNoError(t, err, "Dot")
	assertEqualFloat64(t, 32, d, "1*4 + 2*5 + 3*6")

	y := mustVector(t, "y", Dimension{1, 2})
	_, err = v.Dot(y)
	assertErrorIs(t, err, ErrDimensionMismatch, "mismatched extents")
}

func TestNewSliceValidation(t *testing.T) {
	s, err := NewSlice(Dimension{1, 0}, Dimension{3, 1})
	assertNoError(t, err, "NewSlice")
	assertEqualDimension(t, Dimension{2, 1}, s.Extents(), "extents")
	assertEqualDimension(t, Dimension{1, 0}, s.Begin(), "begin")
	assertEqualDimension(t, Dimension{3, 1}, s.End(), "end")
	if s.Nirrep() != 2 {
		t.Errorf("Nirrep() = %d, want 2", s.Nirrep())
	}
	if got := s.String(); got != "[1 0]..[3 1]" {
		t.Errorf("String() = %q", got)
	}

	_, err = NewSlice(Dimension{0}, Dimension{1, 1})
	assertErrorIs(t, err, ErrNirrepMismatch, "irrep count mismatch")
	_, err = NewSlice(Dimension{2, 0}, Dimension{1, 1})
	assertErrorIs(t, err, ErrSliceRange, "begin past end")
	_, err = NewSlice(Dimension{-1, 0}, Dimension{1, 1})
	assertErrorIs(t, err, ErrSliceRange, "negative begin")
}

func TestSliceDefensiveCopies(t *testing.T) {
	begin := Dimension{1, 0}
	end := Dimension{3, 1}
	s, err := NewSlice(begin, end)
	assertNoError(t, err, "NewSlice")
	begin[0] = 99
	assertEqualDimension(t, Dimension{1, 0}, s.Begin(), "constructor copies begin")
	got := s.End()
	got[0] = 99
	assertEqualDimension(t, Dimension{3, 1}, s.End(), "End returns a copy")
}

func TestVectorGetBlock(t *testing.T) {
	v := mustVector(t, "v", Dimension{3, 2}) // 1..5
	s, err := NewSlice(Dimension{1, 0}, Dimension{3, 1})
	assertNoError(t, err, "NewSlice")

	out, err := v.GetBlock(s)
	assertNoError(t, err, "GetBlock")
	assertEqualDimension(t, Dimension{2, 1}, out.Dimpi(), "sliced extents")
	assertEqualSlice(t, []float64{2, 3}, out.Block(0), "sliced first block")
	assertEqualSlice(t, []float64{4}, out.Block(1), "sliced second block")

	past, err := NewSlice(Dimension{0, 0}, Dimension{4, 1})
	assertNoError(t, err, "NewSlice past extent")
	_, err = v.GetBlock(past)
	assertErrorIs(t, err, ErrSliceRange, "slice past extent")

	narrow, err := NewSlice(Dimension{0}, Dimension{1})
	assertNoError(t, err, "NewSlice single irrep")
	_, err = v.GetBlock(narrow)
	assertErrorIs(t, err, ErrNirrepMismatch, "slice spanning fewer irreps")
}

func TestVectorSetBlock(t *testing.T) {
	v := mustVector(t, "v", Dimension{3, 2}) // 1..5
	s, err := NewSlice(Dimension{1, 0}, Dimension{3, 1})
	assertNoError(t, err, "NewSlice")

	src, err := NewVector("src", Dimension{2, 1})
	assertNoError(t, err, "NewVector src")
	src.Set(0, 0, -2)
	src.Set(0, 1, -3)
	src.Set(1, 0, -4)

	assertNoError(t, v.SetBlock(s, src), "SetBlock")
	assertEqualSlice(t, []float64{1, -2, -3}, v.Block(0), "first block after SetBlock")
	assertEqualSlice(t, []float64{-4, 5}, v.Block(1), "second block after SetBlock")

	wrong, err := NewVector("wrong", Dimension{1, 1})
	assertNoError(t, err, "NewVector wrong")
	err = v.SetBlock(s, wrong)
	assertErrorIs(t, err, ErrShapeMismatch, "source extents must match the slice")
	assertEqualSlice(t, []float64{1, -2, -3}, v.Block(0), "vector untouched on error")
}

func TestVectorShapeHint(t *testing.T) {
	v := mustVector(t, "flat", Dimension{6})
	if v.ShapeHint() != nil {
		t.Errorf("ShapeHint() = %v before set, want nil", v.ShapeHint())
	}

	assertNoError(t, v.SetShapeHint(2, 3), "SetShapeHint")
	hint := v.ShapeHint()
	assertEqualSlice(t, []int{2, 3}, hint, "stored hint")
	hint[0] = 99
	assertEqualSlice(t, []int{2, 3}, v.ShapeHint(), "ShapeHint returns a copy")

	assertErrorIs(t, v.SetShapeHint(2, 2), ErrShapeMismatch, "product must equal Len")
	assertErrorIs(t, v.SetShapeHint(), ErrShapeMismatch, "empty hint")
	assertEqualSlice(t, []int{2, 3}, v.ShapeHint(), "hint unchanged on error")
}

func TestVectorArrayView(t *testing.T) {
	v := mustVector(t, "flat", Dimension{3})
	view, err := v.ArrayView()
	assertNoError(t, err, "ArrayView")
	view[1] = 42
	assertEqualFloat64(t, 42, v.At(1), "flat view writes through")

	blocked := mustVector(t, "blocked", Dimension{2, 1})
	_, err = blocked.ArrayView()
	assertErrorIs(t, err, ErrSingleIrrep, "flat view of a blocked vector")
}

func TestVectorVecView(t *testing.T) {
	v := mustVector(t, "v", Dimension{2, 0, 1})

	view, err := v.VecView(0)
	assertNoError(t, err, "VecView")
	if view.Len() != 2 {
		t.Errorf("view.Len() = %d, want 2", view.Len())
	}
	view.SetVec(1, 42)
	assertEqualFloat64(t, 42, v.Get(0, 1), "gonum view writes through")

	_, err = v.VecView(1)
	assertErrorIs(t, err, ErrEmptyBlock, "empty block has no view")
	_, err = v.VecView(3)
	assertErrorIs(t, err, ErrIrrepRange, "irrep out of range")
}

func TestVectorCopy(t *testing.T) {
	v := mustVector(t, "v", Dimension{2, 1})
	assertNoError(t, v.SetShapeHint(3), "SetShapeHint")

	c := v.Copy()
	c.Set(0, 0, 42)
	assertEqualFloat64(t, 1, v.Get(0, 0), "copy does not alias the original")
	assertEqualSlice(t, []int{3}, c.ShapeHint(), "copy carries the hint")
	if c.Name() != "v" {
		t.Errorf("copy Name() = %q", c.Name())
	}

	bare := mustVector(t, "bare", Dimension{1})
	if bare.Copy().ShapeHint() != nil {
		t.Errorf("copy invented a hint")
	}
}

func TestVectorPrint(t *testing.T) {
	v := mustVector(t, "eps", Dimension{2, 1})
	var sb strings.Builder
	v.Print(&sb)
	out := sb.String()
	for _, want := range []string{"## eps ##", "block 0 (2)", "block 1 (1)", "1.0000000"} {
		if !strings.Contains(out, want) {
			t.Errorf("Print output missing %q:\n%s", want, out)
		}
	}
}
