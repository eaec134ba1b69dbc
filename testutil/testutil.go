package testutil

import (
	"math/rand"
	"sync"
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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns a slice of n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	r.rand.Read(b) // nolint errcheck
	return b
}

// Chunks splits msg into randomly sized non-empty pieces whose concatenation
// is msg. The pieces alias msg, they are not copies.
func (r *RNG) Chunks(msg []byte) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	var chunks [][]byte
	for len(msg) > 0 {
		n := r.rand.Intn(len(msg)) + 1
		chunks = append(chunks, msg[:n])
		msg = msg[n:]
	}

	return chunks
}
