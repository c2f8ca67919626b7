package dataset

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrNoAnimationLayout is returned by animation operations on a dataset
// constructed without an AnimationLayout.
var ErrNoAnimationLayout = errors.New("animation layout not configured")

// AnimationConfig configures the iterator returned by Animations.
type AnimationConfig struct {
	// Shuffle visits animations in a random order. Frames within an
	// animation always stay in sequence.
	Shuffle bool

	// Seed for reproducibility. -1 = random.
	Seed int64
}

// DefaultAnimationConfig returns the standard configuration: shuffled,
// nondeterministic.
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		Shuffle: true,
		Seed:    -1,
	}
}

// Animation returns the i-th animation: a finite lazy iterator over the
// Frames consecutive samples starting at i*Frames. Fails if the dataset
// was constructed without an AnimationLayout.
func (d *TableDataset) Animation(i int) (*SampleIterator, error) {
	if d.anim == nil {
		return nil, fmt.Errorf("animation %d: %w", i, ErrNoAnimationLayout)
	}

	return &SampleIterator{
		ds:        d,
		n:         d.anim.Frames,
		base:      i * d.anim.Frames,
		remaining: -1,
	}, nil
}

// AnimationIterator is a finite lazy sequence of animations, each itself
// a finite lazy sequence of frame samples. The animation order is drawn
// on the first pull, not at construction.
type AnimationIterator struct {
	ds      *TableDataset
	n       int
	order   []int // nil until the first pull
	pos     int
	shuffle bool
	rng     *rand.Rand
}

// Animations returns one pass over all BaseSize animations, in a shuffled
// or ascending order. Fails if the dataset was constructed without an
// AnimationLayout.
func (d *TableDataset) Animations(config AnimationConfig) (*AnimationIterator, error) {
	if d.anim == nil {
		return nil, fmt.Errorf("animations: %w", ErrNoAnimationLayout)
	}

	return &AnimationIterator{
		ds:      d,
		n:       d.anim.BaseSize,
		shuffle: config.Shuffle,
		rng:     newRand(config.Seed),
	}, nil
}

// Next returns the next animation, or false when all animations have been
// visited.
func (it *AnimationIterator) Next() (*SampleIterator, bool) {
	if it.order == nil {
		it.order = indexOrder(it.n, it.shuffle, it.rng)
	}
	if it.pos >= len(it.order) {
		return nil, false
	}
	anim, err := it.ds.Animation(it.order[it.pos])
	if err != nil {
		// Layout was checked at construction; it cannot vanish afterwards.
		panic(err)
	}
	it.pos++
	return anim, true
}

// Len returns the number of animations in the pass.
func (it *AnimationIterator) Len() int {
	return it.n
}

// Reset rewinds the iterator, keeping the current animation order.
func (it *AnimationIterator) Reset() {
	it.pos = 0
}
