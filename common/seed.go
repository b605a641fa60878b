package common

import "time"

// Source is a uniform pseudo-random source producing values in [0, 1).
type Source interface {
	Random() float64
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// The same seed always yields the same sequence, which keeps layouts
// reproducible in tests.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

var _ Source = (*SeededRNG)(nil)

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// NewClockRNG seeds a generator from the wall clock.
func NewClockRNG() *SeededRNG {
	return NewSeededRNG(uint32(time.Now().UnixNano()))
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Reset resets the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Seed returns the seed the generator was created or last reset with.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Random generates the next random number using Mulberry32 algorithm.
// Returns a float64 between 0 (inclusive) and 1 (exclusive).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomInt generates a random integer in the specified range [min, max).
func RandomInt(src Source, min, max int) int {
	if max <= min {
		return min
	}
	n := int(src.Random()*float64(max-min)) + min
	if n >= max {
		n = max - 1
	}
	return n
}

// RandomFloat generates a random float in the specified range [min, max).
// An empty or inverted range collapses to min.
func RandomFloat(src Source, min, max float64) float64 {
	if max <= min {
		return min
	}
	return src.Random()*(max-min) + min
}
