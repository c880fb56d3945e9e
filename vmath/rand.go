package vmath

import "time"

// Rand is a xorshift64 source shared by all stochastic simulation steps
// Not safe for concurrent use; owned by the tick goroutine
type Rand struct {
	state uint64
}

// NewRand creates a source from seed, 0 seeds from the wall clock
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Float64 returns a value in [0, 1)
func (r *Rand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Intn returns a value in [0, n), 0 for n <= 0
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Chance returns true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}
