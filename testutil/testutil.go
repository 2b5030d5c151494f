package testutil

import (
	"math/rand"
	"sync"

	"lukechampine.com/uint128"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Word returns a uniformly random 64-bit word. Narrower widths are obtained
// by truncating conversion; truncation of a uniform word stays uniform.
func (r *RNG) Word() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Words returns n uniformly random 64-bit words.
func (r *RNG) Words(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	for i := range out {
		out[i] = r.rand.Uint64()
	}
	return out
}

// Uint128 returns a uniformly random 128-bit value.
func (r *RNG) Uint128() uint128.Uint128 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint128.New(r.rand.Uint64(), r.rand.Uint64())
}

// Index returns a random bit index in [0, width).
func (r *RNG) Index(width int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(width)
}

// Bool returns a random bit value.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}
