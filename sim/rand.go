package sim

// Rand is a xorshift64 generator. It is the only randomness source in the
// simulation; seeded identically it yields the identical sequence on every
// platform, unlike math/rand whose stream is not stable across Go releases.
type Rand struct {
	state uint64
}

// NewRand seeds a generator. Zero would be a fixed point of xorshift, so it
// maps to 1.
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Next returns the next 64-bit value.
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n); n <= 0 returns 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
