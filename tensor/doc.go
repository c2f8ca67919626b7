// Package tensor provides the ordered numeric array type used to build
// dataset tables.
//
// # Overview
//
// A RawTensor is a contiguous row-major multi-dimensional array carrying
// runtime type information. The leading dimension of every tensor in a
// dataset table is the sample axis. The package provides:
//   - Typed construction (FromSlice, Zeros, Full, Arange)
//   - Shape introspection (Shape, DataType)
//   - Zero-copy views along the sample axis (Select, Narrow)
//
// # Basic Usage
//
//	import "github.com/WangHong-yang/torch-datasets/tensor"
//
//	data, err := tensor.FromSlice(pixels, tensor.Shape{60000, 28, 28})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	row := data.Select(5)       // View of sample 5, shape {28, 28}
//	window := data.Narrow(0, 10) // View of samples 0..9, shape {10, 28, 28}
//
// # Supported Data Types
//
// The DType constraint covers float32, float64, int32, int64, uint8 and
// bool. Element access goes through the typed accessors (AsFloat32 and
// friends), which panic on dtype mismatch.
package tensor
