package tensor

import "fmt"

// Select returns a zero-copy view of the i-th slice along the leading
// dimension. The view's shape is the tensor's shape with that dimension
// removed: selecting row 2 of a [10, 28, 28] tensor yields [28, 28].
//
// The view shares the backing buffer; writes through it are visible in
// the parent. Panics if the tensor is 0-dimensional or i is out of range.
func (r *RawTensor) Select(i int) *RawTensor {
	if len(r.shape) == 0 {
		panic("select: cannot select from a 0-dimensional tensor")
	}
	if i < 0 || i >= r.shape[0] {
		panic(fmt.Sprintf("select: index %d out of bounds for dimension 0 (size %d)", i, r.shape[0]))
	}

	shape := r.shape[1:].Clone()
	return &RawTensor{
		data:   r.data,
		shape:  shape,
		stride: shape.ComputeStrides(),
		dtype:  r.dtype,
		offset: r.offset + i*r.stride[0]*r.dtype.Size(),
	}
}

// Narrow returns a zero-copy view of size consecutive slices along the
// leading dimension, starting at offset. The view's shape equals the
// tensor's shape with the leading dimension replaced by size.
//
// The view shares the backing buffer. Panics if the tensor is
// 0-dimensional or [offset, offset+size) exceeds the leading dimension.
func (r *RawTensor) Narrow(offset, size int) *RawTensor {
	if len(r.shape) == 0 {
		panic("narrow: cannot narrow a 0-dimensional tensor")
	}
	if size <= 0 {
		panic(fmt.Sprintf("narrow: size must be positive, got %d", size))
	}
	if offset < 0 || offset+size > r.shape[0] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for dimension 0 (size %d)",
			offset, offset+size, r.shape[0]))
	}

	shape := r.shape.Clone()
	shape[0] = size
	return &RawTensor{
		data:   r.data,
		shape:  shape,
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		offset: r.offset + offset*r.stride[0]*r.dtype.Size(),
	}
}
