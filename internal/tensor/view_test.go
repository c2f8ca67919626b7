package tensor

import "testing"

func TestSelect(t *testing.T) {
	r, _ := FromSlice([]float32{
		0, 1, 2,
		10, 11, 12,
		20, 21, 22,
	}, Shape{3, 3})

	row := r.Select(1)
	assertEqualShape(t, Shape{3}, row.Shape(), "row shape")
	data := row.AsFloat32()
	for i, want := range []float32{10, 11, 12} {
		assertEqualFloat32(t, want, data[i], "row element")
	}
}

func TestSelectNested(t *testing.T) {
	// Shape {2, 2, 2}: selecting twice drills down to a single row.
	r, _ := FromSlice([]float32{0, 1, 2, 3, 4, 5, 6, 7}, Shape{2, 2, 2})

	inner := r.Select(1).Select(0)
	assertEqualShape(t, Shape{2}, inner.Shape(), "inner shape")
	assertEqualFloat32(t, 4, inner.AsFloat32()[0], "inner[0]")
	assertEqualFloat32(t, 5, inner.AsFloat32()[1], "inner[1]")
}

func TestSelectIsView(t *testing.T) {
	r, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})

	row := r.Select(0)
	row.AsFloat32()[1] = 42

	assertEqualFloat32(t, 42, r.AsFloat32()[1], "write through view must hit parent")
}

func TestSelectOutOfRange(t *testing.T) {
	r, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
	assertPanics(t, "Select(2)", func() { r.Select(2) })
	assertPanics(t, "Select(-1)", func() { r.Select(-1) })
	assertPanics(t, "Select on scalar", func() { r.Select(0).Select(0).Select(0) })
}

func TestNarrow(t *testing.T) {
	r, _ := FromSlice([]float32{
		0, 1,
		10, 11,
		20, 21,
		30, 31,
	}, Shape{4, 2})

	window := r.Narrow(1, 2)
	assertEqualShape(t, Shape{2, 2}, window.Shape(), "window shape")
	data := window.AsFloat32()
	for i, want := range []float32{10, 11, 20, 21} {
		assertEqualFloat32(t, want, data[i], "window element")
	}
}

func TestNarrowIsView(t *testing.T) {
	r, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{4})

	window := r.Narrow(2, 2)
	window.AsFloat32()[0] = 99

	assertEqualFloat32(t, 99, r.AsFloat32()[2], "write through view must hit parent")
}

func TestNarrowThenSelect(t *testing.T) {
	r, _ := FromSlice([]float32{0, 1, 2, 3, 4, 5}, Shape{6})

	// Row i of a narrowed view is row offset+i of the parent.
	v := r.Narrow(2, 3).Select(1)
	assertEqualShape(t, Shape{}, v.Shape(), "scalar shape")
	assertEqualFloat32(t, 3, v.AsFloat32()[0], "narrow+select")
}

func TestNarrowOutOfRange(t *testing.T) {
	r, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{4})
	assertPanics(t, "Narrow past end", func() { r.Narrow(2, 3) })
	assertPanics(t, "Narrow negative offset", func() { r.Narrow(-1, 2) })
	assertPanics(t, "Narrow zero size", func() { r.Narrow(0, 0) })
}
