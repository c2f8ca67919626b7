package tensor

import "fmt"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T DType](shape Shape) *RawTensor {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return raw
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14)
func Full[T DType](shape Shape, value T) *RawTensor {
	raw := Zeros[T](shape)
	data := sliceOf[T](raw)
	for i := range data {
		data[i] = value
	}
	return raw
}

// Arange creates a 1D tensor with values from start to end (exclusive).
// Only works with numeric types.
//
// Example:
//
//	t := tensor.Arange[float32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T DType](start, end int) *RawTensor {
	if end < start {
		panic(fmt.Sprintf("arange: end %d < start %d", end, start))
	}
	raw := Zeros[T](Shape{end - start})
	switch data := any(sliceOf[T](raw)).(type) {
	case []float32:
		for i := range data {
			data[i] = float32(start + i)
		}
	case []float64:
		for i := range data {
			data[i] = float64(start + i)
		}
	case []int32:
		for i := range data {
			data[i] = int32(start + i)
		}
	case []int64:
		for i := range data {
			data[i] = int64(start + i)
		}
	case []uint8:
		for i := range data {
			data[i] = uint8(start + i)
		}
	default:
		panic("arange: unsupported type")
	}
	return raw
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	copy(sliceOf[T](raw), data)
	return raw, nil
}

// sliceOf returns a typed view of the tensor's data.
// The slice directly accesses the underlying memory (zero-copy).
func sliceOf[T DType](r *RawTensor) []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(r.AsFloat32()).([]T)
	case float64:
		return any(r.AsFloat64()).([]T)
	case int32:
		return any(r.AsInt32()).([]T)
	case int64:
		return any(r.AsInt64()).([]T)
	case uint8:
		return any(r.AsUint8()).([]T)
	case bool:
		return any(r.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}
