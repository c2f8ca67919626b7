package dataset

import (
	"math/rand"
)

// MiniBatchConfig configures the batch iterator returned by MiniBatches.
type MiniBatchConfig struct {
	// Shuffle visits batches in a random order. Batch contents are
	// contiguous index ranges either way; only the batch order varies.
	Shuffle bool

	// Size is the number of samples per batch.
	Size int

	// Seed for reproducibility. -1 = random.
	Seed int64
}

// DefaultMiniBatchConfig returns the standard training configuration:
// shuffled batches of 10, nondeterministic order.
func DefaultMiniBatchConfig() MiniBatchConfig {
	return MiniBatchConfig{
		Shuffle: true,
		Size:    10,
		Seed:    -1,
	}
}

// MiniBatch returns the batch of size consecutive samples starting at
// offset: for every field, a zero-copy Narrow view along the sample axis.
// A range exceeding the sample axis panics via the tensor layer.
func (d *TableDataset) MiniBatch(offset, size int) Batch {
	b := make(Batch, len(d.table))
	for field, t := range d.table {
		b[field] = t.Narrow(offset, size)
	}
	return b
}

// Samples returns a finite lazy iterator over the batch's rows, yielding
// one Sample per row in ascending order. This is the sequence form of a
// mini-batch: no stacking is performed and each Sample is extracted only
// when pulled.
func (b Batch) Samples() *SampleIterator {
	// All fields share one window; any field's view gives its extent.
	var size int
	for _, t := range b {
		size = t.Shape()[0]
		break
	}

	return &SampleIterator{ds: &TableDataset{table: Table(b)}, n: size, remaining: -1}
}

// BatchIterator is a finite lazy sequence of mini-batches covering one
// epoch. Batches are contiguous, non-overlapping windows of the sample
// axis; any remainder that does not fill a whole batch is dropped. The
// batch order is drawn on the first pull, not at construction.
type BatchIterator struct {
	ds      *TableDataset
	n       int
	size    int
	order   []int // nil until the first pull
	pos     int
	shuffle bool
	rng     *rand.Rand
}

// MiniBatches returns one epoch of mini-batches: Size()/config.Size
// batches of config.Size consecutive samples each, visited in a shuffled
// or ascending batch order. Trailing samples that do not fill a whole
// batch are excluded from the epoch.
//
// Unlike Sampler, the sequence is finite: it exhausts after one epoch.
func (d *TableDataset) MiniBatches(config MiniBatchConfig) *BatchIterator {
	return &BatchIterator{
		ds:      d,
		n:       d.Size() / config.Size,
		size:    config.Size,
		shuffle: config.Shuffle,
		rng:     newRand(config.Seed),
	}
}

// Next returns the next mini-batch, or false when the epoch is exhausted.
func (it *BatchIterator) Next() (Batch, bool) {
	if it.order == nil {
		it.order = indexOrder(it.n, it.shuffle, it.rng)
	}
	if it.pos >= len(it.order) {
		return nil, false
	}
	k := it.order[it.pos]
	it.pos++
	return it.ds.MiniBatch(k*it.size, it.size), true
}

// Len returns the number of batches in the epoch.
func (it *BatchIterator) Len() int {
	return it.n
}

// Reset rewinds the iterator to the start of the epoch, keeping the
// current batch order.
func (it *BatchIterator) Reset() {
	it.pos = 0
}
