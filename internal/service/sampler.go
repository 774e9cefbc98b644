package service

import "math/rand/v2"

// DefaultPerturbation is the half-width of the production perturbation range
const DefaultPerturbation = 5.0

// Sampler supplies the random perturbation added to each raw estimate
type Sampler interface {
	Sample() float64
}

// SamplerFunc adapts a plain function to the Sampler interface
type SamplerFunc func() float64

// Sample calls f
func (f SamplerFunc) Sample() float64 {
	return f()
}

// UniformSampler draws from a uniform distribution over [-Spread, Spread].
// Each call samples independently; the global math/rand/v2 source is safe for
// concurrent use.
type UniformSampler struct {
	Spread float64
}

// NewUniformSampler creates a sampler over [-spread, spread]
func NewUniformSampler(spread float64) UniformSampler {
	if spread < 0 {
		spread = -spread
	}
	return UniformSampler{Spread: spread}
}

// unitSteps is the resolution of the closed unit interval used by Sample
const unitSteps = 1 << 53

// Sample returns a value in [-Spread, Spread]. Both bounds are reachable.
func (s UniformSampler) Sample() float64 {
	if s.Spread == 0 {
		return 0
	}
	return s.scale(rand.Uint64N(unitSteps + 1))
}

// scale maps step n of [0, unitSteps] linearly onto [-Spread, Spread]
func (s UniformSampler) scale(n uint64) float64 {
	u := float64(n) / unitSteps
	return (2*u - 1) * s.Spread
}

// FixedSampler always returns v
func FixedSampler(v float64) Sampler {
	return SamplerFunc(func() float64 { return v })
}
