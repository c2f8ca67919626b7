// Package dataset provides an in-memory table dataset for training loops.
//
// A TableDataset wraps a record-of-arrays table (parallel tensors sharing
// one sample axis) and exposes per-index sample extraction, infinite
// shuffled sampling, mini-batching, and frame-grouped animation access.
// All sequence producers are lazy pull-based iterators; nothing is
// materialized until the consumer asks for the next element.
package dataset

import (
	"github.com/WangHong-yang/torch-datasets/internal/tensor"
)

// Table is the backing store of a TableDataset: a mapping from field name
// to a tensor whose leading dimension is the sample axis. Every field must
// have the same leading dimension; this is not validated.
type Table = map[string]*tensor.RawTensor

// Sample maps each field name to a zero-copy view of one row along the
// sample axis.
type Sample = map[string]*tensor.RawTensor

// Batch maps each field name to a zero-copy view of a contiguous range of
// rows along the sample axis.
type Batch map[string]*tensor.RawTensor

// AnimationLayout describes how a dataset's sample axis groups into
// fixed-length animations: BaseSize animations of Frames consecutive
// samples each.
type AnimationLayout struct {
	Frames   int // Samples per animation
	BaseSize int // Number of animations
}

// Config holds optional dataset metadata.
type Config struct {
	// Name is a human-readable dataset name. Optional.
	Name string

	// Classes are the ordered class labels of the dataset. Optional.
	Classes []string

	// Animation describes the frame grouping of the sample axis.
	// Required only by Animation and Animations.
	Animation *AnimationLayout
}

// TableDataset is a read-only view over a backing table. The table is
// held by reference, never copied; concurrent mutation of the backing
// tensors during iteration is unsupported.
type TableDataset struct {
	table   Table
	name    string
	classes []string
	anim    *AnimationLayout
}

// New creates a TableDataset over table. The table is stored by
// reference. Field lengths are not validated: a table whose fields
// disagree on the sample axis produces undefined behavior.
func New(table Table, config Config) *TableDataset {
	return &TableDataset{
		table:   table,
		name:    config.Name,
		classes: config.Classes,
		anim:    config.Animation,
	}
}

// Size returns the number of samples, read from the leading dimension of
// the "data" field. Panics if the table has no "data" field.
func (d *TableDataset) Size() int {
	return d.table["data"].Shape()[0]
}

// Dimensions returns the shape of a single sample of the "data" field:
// the full shape with the leading sample-count dimension removed.
func (d *TableDataset) Dimensions() tensor.Shape {
	return d.table["data"].Shape()[1:].Clone()
}

// NumDimensions returns the flattened element count of a single sample of
// the "data" field, e.g. 784 for samples of shape {28, 28}.
func (d *TableDataset) NumDimensions() int {
	return d.Dimensions().NumElements()
}

// Classes returns the ordered class labels (possibly empty).
func (d *TableDataset) Classes() []string {
	return d.classes
}

// Name returns the dataset name (possibly empty).
func (d *TableDataset) Name() string {
	return d.name
}

// Sample returns the i-th row of every field as zero-copy views.
// Out-of-range indices panic via the tensor layer.
func (d *TableDataset) Sample(i int) Sample {
	s := make(Sample, len(d.table))
	for field, t := range d.table {
		s[field] = t.Select(i)
	}
	return s
}
