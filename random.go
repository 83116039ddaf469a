package fakejson

import "math/rand/v2"

// Random is the source of randomness a session draws from.
type Random interface {
	// Bool reports true with probability p.
	Bool(p float64) bool
	Uint64() uint64
	// Uint64N returns a value in [0, n). n must be positive.
	Uint64N(n uint64) uint64
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// pcgRandom implements Random with a per-session PCG generator.
type pcgRandom struct {
	r *rand.Rand
}

// NewRandom returns a deterministic Random seeded with seed.
func NewRandom(seed uint64) Random {
	return &pcgRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewEntropyRandom returns a Random seeded from the runtime's entropy source.
func NewEntropyRandom() Random {
	return NewRandom(rand.Uint64())
}

func (p *pcgRandom) Bool(prob float64) bool {
	switch {
	case prob <= 0:
		return false
	case prob >= 1:
		return true
	}
	return p.r.Float64() < prob
}

func (p *pcgRandom) Uint64() uint64          { return p.r.Uint64() }
func (p *pcgRandom) Uint64N(n uint64) uint64 { return p.r.Uint64N(n) }
func (p *pcgRandom) Float64() float64        { return p.r.Float64() }
func (p *pcgRandom) IntN(n int) int          { return p.r.IntN(n) }

// choose picks one element uniformly; ok is false for an empty slice.
func choose[T any](r Random, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.IntN(len(items))], true
}
