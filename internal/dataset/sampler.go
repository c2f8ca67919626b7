package dataset

import (
	"math/rand"
)

// SamplerConfig configures the sample iterator returned by Sampler.
type SamplerConfig struct {
	// Shuffle draws a fresh uniform permutation of the sample axis for
	// every epoch. When false, each epoch visits samples in ascending
	// index order.
	Shuffle bool

	// Seed for reproducibility. -1 = random.
	Seed int64
}

// DefaultSamplerConfig returns the standard training configuration:
// shuffled, nondeterministic.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		Shuffle: true,
		Seed:    -1,
	}
}

// SampleIterator is a lazy pull-based sequence of Samples. No index order
// is generated and no sample is extracted until the consumer pulls.
//
// Iterators produced by Sampler are infinite: exhausting one epoch's
// index order draws a new one (an independent permutation when shuffling)
// and continues, so consumers bound consumption themselves, e.g. with
// Take. Iterators produced by Batch.Samples and Animation are finite.
type SampleIterator struct {
	ds        *TableDataset
	n         int   // Epoch length
	base      int   // Index offset into the dataset (for batch/animation windows)
	order     []int // Current epoch's order; nil until the first pull
	pos       int
	cycle     bool // Regenerate order on exhaustion instead of stopping
	shuffle   bool
	remaining int // Pulls left before EOF; -1 = unbounded
	rng       *rand.Rand
}

// Sampler returns an infinite restartable iterator over the dataset's
// samples. Each epoch visits every sample exactly once, in a freshly
// drawn random order when config.Shuffle is set, ascending otherwise.
//
// Example:
//
//	it := ds.Sampler(dataset.DefaultSamplerConfig())
//	for i := 0; i < steps; i++ {
//	    s, _ := it.Next()
//	    train(s)
//	}
func (d *TableDataset) Sampler(config SamplerConfig) *SampleIterator {
	return &SampleIterator{
		ds:        d,
		n:         d.Size(),
		cycle:     true,
		shuffle:   config.Shuffle,
		remaining: -1,
		rng:       newRand(config.Seed),
	}
}

// Next returns the next sample. The second result is false once a finite
// iterator is exhausted; infinite iterators always return true.
func (it *SampleIterator) Next() (Sample, bool) {
	if it.remaining == 0 {
		return nil, false
	}
	if it.pos >= len(it.order) {
		if it.order != nil && !it.cycle {
			return nil, false
		}
		// Epoch boundary (or first pull): draw a fresh order.
		it.order = it.epochOrder()
		it.pos = 0
		if len(it.order) == 0 {
			return nil, false
		}
	}

	s := it.ds.Sample(it.base + it.order[it.pos])
	it.pos++
	if it.remaining > 0 {
		it.remaining--
	}
	return s, true
}

// Reset restarts the iterator: the position rewinds and, when shuffling,
// the next pull draws a fresh permutation. Any Take bound is cleared.
func (it *SampleIterator) Reset() {
	it.order = nil
	it.pos = 0
	it.remaining = -1
}

// Take bounds the iterator to at most n further pulls and returns it.
func (it *SampleIterator) Take(n int) *SampleIterator {
	it.remaining = n
	return it
}

// epochOrder produces one epoch's index order over [0, n).
func (it *SampleIterator) epochOrder() []int {
	return indexOrder(it.n, it.shuffle, it.rng)
}

// indexOrder draws an ordering over [0, n): a uniform permutation when
// shuffling, ascending identity otherwise.
func indexOrder(n int, shuffle bool, rng *rand.Rand) []int {
	if shuffle {
		return rng.Perm(n)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// newRand builds the iterator-local random source. Each iterator owns its
// rng so independently advancing iterators over one dataset never share
// state.
func newRand(seed int64) *rand.Rand {
	if seed >= 0 {
		return rand.New(rand.NewSource(seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	}
	return rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // math/rand is appropriate for sampling, not security-critical
}
