package tensor

import (
	"math"
	"testing"
)

func assertEqualFloat32(t *testing.T, expected, actual float32, msg string) {
	t.Helper()
	if math.Abs(float64(expected-actual)) > 1e-6 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertPanics(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", msg)
		}
	}()
	f()
}

func TestNewRaw(t *testing.T) {
	r, err := NewRaw(Shape{2, 3}, Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	assertEqualShape(t, Shape{2, 3}, r.Shape(), "shape")
	if r.DType() != Float32 {
		t.Errorf("DType() = %v, want Float32", r.DType())
	}
	if r.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", r.NumElements())
	}
	if r.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", r.ByteSize())
	}

	// Zero-initialized
	for _, v := range r.AsFloat32() {
		assertEqualFloat32(t, 0, v, "element")
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float32); err == nil {
		t.Error("NewRaw({2, 0}) should fail")
	}
}

func TestFromSlice(t *testing.T) {
	r, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	data := r.AsFloat32()
	for i, want := range []float32{1, 2, 3, 4, 5, 6} {
		assertEqualFloat32(t, want, data[i], "element")
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice([]float32{1, 2, 3}, Shape{2, 3}); err == nil {
		t.Error("FromSlice with 3 elements for shape {2, 3} should fail")
	}
}

func TestFromSliceInt32(t *testing.T) {
	r, err := FromSlice([]int32{7, 8, 9}, Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	data := r.AsInt32()
	if data[0] != 7 || data[2] != 9 {
		t.Errorf("AsInt32() = %v, want [7 8 9]", data)
	}
}

func TestAccessorDTypeMismatch(t *testing.T) {
	r, _ := NewRaw(Shape{3}, Float32)
	assertPanics(t, "AsInt32 on float32 tensor", func() { r.AsInt32() })
	assertPanics(t, "AsFloat64 on float32 tensor", func() { r.AsFloat64() })
}

func TestFull(t *testing.T) {
	r := Full(Shape{2, 2}, float32(3.5))
	for _, v := range r.AsFloat32() {
		assertEqualFloat32(t, 3.5, v, "element")
	}
}

func TestArange(t *testing.T) {
	r := Arange[int64](2, 7)
	assertEqualShape(t, Shape{5}, r.Shape(), "shape")
	data := r.AsInt64()
	for i, want := range []int64{2, 3, 4, 5, 6} {
		if data[i] != want {
			t.Errorf("Arange[%d] = %d, want %d", i, data[i], want)
		}
	}
}

func TestAt(t *testing.T) {
	r, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if got := r.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %v, want 6", got)
	}
	if got := r.At(0, 0); got != 1 {
		t.Errorf("At(0, 0) = %v, want 1", got)
	}
	assertPanics(t, "At out of bounds", func() { r.At(2, 0) })
	assertPanics(t, "At wrong arity", func() { r.At(1) })
}

func TestClone(t *testing.T) {
	r, _ := FromSlice([]float32{1, 2, 3}, Shape{3})
	c := r.Clone()
	c.AsFloat32()[0] = 99

	assertEqualFloat32(t, 1, r.AsFloat32()[0], "original after clone write")
	assertEqualFloat32(t, 99, c.AsFloat32()[0], "clone after write")
}
