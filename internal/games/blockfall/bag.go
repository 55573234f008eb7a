package blockfall

import "math/rand"

// Bag supplies upcoming piece kinds using 7-bag randomization: a
// shuffled permutation of all seven kinds is consumed without
// replacement, then a freshly shuffled bag is appended. Any seven
// consecutive draws starting at a bag boundary therefore contain each
// kind exactly once.
//
// The RNG is injected so the session owns all randomness and games
// replay deterministically from a seed.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag creates a piece source drawing from the given RNG.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next returns the next piece kind, refilling the queue with a new
// shuffled bag when it runs out.
func (b *Bag) Next() Kind {
	b.ensure(1)
	kind := b.queue[0]
	b.queue = b.queue[1:]
	return kind
}

// Peek returns the next n kinds without consuming them. Peeking beyond
// the current bag materializes the following bag's shuffle immediately:
// the previewed continuation is committed, and subsequent Next calls
// follow it exactly.
func (b *Bag) Peek(n int) []Kind {
	if n <= 0 {
		return nil
	}
	b.ensure(n)
	out := make([]Kind, n)
	copy(out, b.queue[:n])
	return out
}

// Remaining returns how many kinds are queued before the next refill
// would be needed.
func (b *Bag) Remaining() int {
	return len(b.queue)
}

// ensure tops up the queue with shuffled bags until it holds at least
// n kinds.
func (b *Bag) ensure(n int) {
	for len(b.queue) < n {
		bag := Kinds()
		// Fisher-Yates shuffle
		for i := len(bag) - 1; i > 0; i-- {
			j := b.rng.Intn(i + 1)
			bag[i], bag[j] = bag[j], bag[i]
		}
		b.queue = append(b.queue, bag...)
	}
}
