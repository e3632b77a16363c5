package geom

// Rand is the randomness source used for layout sampling.
// *rand.Rand from math/rand/v2 implements it.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Range is a half-open interval [Min, Max) of reals.
type Range struct {
	Min float64 `toml:"min" json:"min"`
	Max float64 `toml:"max" json:"max"`
}

// Empty reports whether the range contains no values.
func (r Range) Empty() bool { return r.Max < r.Min }

// Sample draws uniformly from [min, max). When min == max it returns min.
func Sample(rng Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// SampleRange draws uniformly from r.
func SampleRange(rng Rand, r Range) float64 {
	return Sample(rng, r.Min, r.Max)
}

// IntRange is a closed interval [Min, Max] of integers.
type IntRange struct {
	Min int `toml:"min" json:"min"`
	Max int `toml:"max" json:"max"`
}

// SampleInt draws uniformly from the closed interval [r.Min, r.Max].
func SampleInt(rng Rand, r IntRange) int {
	return r.Min + rng.IntN(r.Max-r.Min+1)
}
