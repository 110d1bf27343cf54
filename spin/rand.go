package spin

import "time"

// Source supplies the randomness for spin deltas. The machine draws exactly
// one value per triggered session; tests inject fixed sequences to assert
// exact outcomes.
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// xorshift64 is a small deterministic PRNG. Not cryptographic; speed and
// reproducibility are what matter here.
type xorshift64 struct {
	state uint64
}

// NewSource returns a seeded deterministic source. A zero seed falls back
// to the current time.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if seed == 0 {
		seed = 1
	}
	return &xorshift64{state: seed}
}

func (r *xorshift64) next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniformly distributed value in [0, 1)
func (r *xorshift64) Float64() float64 {
	// Top 53 bits map exactly onto the float64 mantissa
	return float64(r.next()>>11) / float64(1<<53)
}
