// Package dataset wraps an in-memory table of parallel tensors into a
// dataset supporting indexed access, shuffled sampling, mini-batching and
// animation grouping for training loops.
//
// Example usage:
//
//	import (
//	    "github.com/WangHong-yang/torch-datasets/dataset"
//	    "github.com/WangHong-yang/torch-datasets/tensor"
//	)
//
//	data, _ := tensor.FromSlice(pixels, tensor.Shape{60000, 28, 28})
//	labels, _ := tensor.FromSlice(digits, tensor.Shape{60000})
//
//	ds := dataset.New(dataset.Table{"data": data, "class": labels}, dataset.Config{
//	    Name:    "mnist",
//	    Classes: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
//	})
//
//	batches := ds.MiniBatches(dataset.DefaultMiniBatchConfig())
//	for batch, ok := batches.Next(); ok; batch, ok = batches.Next() {
//	    step(batch["data"], batch["class"])
//	}
package dataset

import (
	"github.com/WangHong-yang/torch-datasets/internal/dataset"
)

// Table is the backing store of a TableDataset: a mapping from field name
// to a tensor whose leading dimension is the sample axis.
type Table = dataset.Table

// Sample maps each field name to a zero-copy view of one row along the
// sample axis.
type Sample = dataset.Sample

// Batch maps each field name to a zero-copy view of a contiguous range of
// rows along the sample axis. Its Samples method yields the sequence form
// of the mini-batch.
type Batch = dataset.Batch

// AnimationLayout describes how the sample axis groups into BaseSize
// animations of Frames consecutive samples each.
type AnimationLayout = dataset.AnimationLayout

// Config holds optional dataset metadata.
type Config = dataset.Config

// TableDataset is a read-only view over a backing table exposing
// introspection, sample extraction and the lazy sampling engines.
type TableDataset = dataset.TableDataset

// FieldStats holds per-field mean and standard deviation.
type FieldStats = dataset.FieldStats

// Iterator types

// SampleIterator is a lazy pull-based sequence of Samples.
type SampleIterator = dataset.SampleIterator

// BatchIterator is a finite lazy sequence of mini-batches covering one
// epoch.
type BatchIterator = dataset.BatchIterator

// AnimationIterator is a finite lazy sequence of animations, each itself
// a finite lazy sequence of frame samples.
type AnimationIterator = dataset.AnimationIterator

// Configuration

// SamplerConfig configures TableDataset.Sampler.
type SamplerConfig = dataset.SamplerConfig

// MiniBatchConfig configures TableDataset.MiniBatches.
type MiniBatchConfig = dataset.MiniBatchConfig

// AnimationConfig configures TableDataset.Animations.
type AnimationConfig = dataset.AnimationConfig

// ErrNoAnimationLayout is returned by animation operations on a dataset
// constructed without an AnimationLayout.
var ErrNoAnimationLayout = dataset.ErrNoAnimationLayout

// DefaultSamplerConfig returns the standard sampler configuration:
// shuffled, nondeterministic.
func DefaultSamplerConfig() SamplerConfig {
	return dataset.DefaultSamplerConfig()
}

// DefaultMiniBatchConfig returns the standard mini-batch configuration:
// shuffled batches of 10, nondeterministic order.
func DefaultMiniBatchConfig() MiniBatchConfig {
	return dataset.DefaultMiniBatchConfig()
}

// DefaultAnimationConfig returns the standard animation configuration:
// shuffled, nondeterministic.
func DefaultAnimationConfig() AnimationConfig {
	return dataset.DefaultAnimationConfig()
}

// New creates a TableDataset over table. The table is stored by
// reference; field lengths are not validated.
//
// Example:
//
//	ds := dataset.New(dataset.Table{"data": data, "class": labels}, dataset.Config{})
func New(table Table, config Config) *TableDataset {
	return dataset.New(table, config)
}
