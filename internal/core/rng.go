package core

// SimpleRNG is a deterministic pseudo-random number generator (64-bit LCG).
// The same seed always yields the same sequence, which keeps demo snapshots
// reproducible.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed. A zero seed is
// replaced with 1.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n). It returns 0 when n <= 0.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a random float64 in [lo, hi). Reversed bounds are swapped.
func (r *SimpleRNG) Range(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Float64()*(hi-lo)
}

// IntRange returns a random int in [lo, hi], both ends included.
func (r *SimpleRNG) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// State returns the generator's internal state, for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
