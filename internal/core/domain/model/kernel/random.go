package kernel

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Randomizer is the random source for probabilistic domain rules.
// *rand.Rand from math/rand/v2 satisfies it.
type Randomizer interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// NewRandomizer returns a PCG-backed generator. A zero seed derives one from the clock.
// The result is not safe for concurrent use; callers serialize access.
func NewRandomizer(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // clock value is never negative
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // not used for security
}

// LockedRandomizer serializes access to a Randomizer so one generator can be
// shared by concurrent orders.
type LockedRandomizer struct {
	mu    sync.Mutex
	inner Randomizer
}

func NewLockedRandomizer(inner Randomizer) *LockedRandomizer {
	return &LockedRandomizer{inner: inner}
}

func (r *LockedRandomizer) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.IntN(n)
}
