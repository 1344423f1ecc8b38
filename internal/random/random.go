// Package random provides the randomness used by the game core behind a small
// interface so tests can supply deterministic sequences.
package random

import "math/rand"

// Source provides random numbers for tile spawning.
type Source interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int

	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// Seeded implements Source on top of math/rand with a fixed seed.
type Seeded struct {
	rng *rand.Rand
}

// New creates a Seeded source. The same seed always yields the same sequence.
func New(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n). Returns 0 when n <= 0.
func (s *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *Seeded) Float64() float64 {
	return s.rng.Float64()
}

// Int63 returns a non-negative random int64, used to derive per-round seeds.
func (s *Seeded) Int63() int64 {
	return s.rng.Int63()
}
