package domain

import "math/rand"

// Rand is the random source used by generation logic. Tests supply a
// deterministic implementation instead of depending on uncontrolled
// randomness.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

type stdRand struct {
	r *rand.Rand
}

// NewRand returns a Rand backed by math/rand with the given seed.
func NewRand(seed int64) Rand {
	return &stdRand{r: rand.New(rand.NewSource(seed))} //nolint:gosec
}

func (s *stdRand) Float64() float64 { return s.r.Float64() }
func (s *stdRand) Intn(n int) int   { return s.r.Intn(n) }
