// ABOUTME: RandomVariate wraps an injected uniform source
// ABOUTME: Derives the three-term Gaussian-like variate used for text shaping
package core

import "math"

// RandomSource produces uniform values in [0,1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

// RandomVariate derives the distributions used by the shaper and sequencer
type RandomVariate struct {
	src RandomSource
}

// NewRandomVariate creates a RandomVariate over src
func NewRandomVariate(src RandomSource) *RandomVariate {
	return &RandomVariate{src: src}
}

// Uniform returns the next value in [0,1)
func (rv *RandomVariate) Uniform() float64 {
	return rv.src.Float64()
}

// GaussianSample sums three uniforms mapped to [-1,1).
// The result lies in [-3,3) and is only roughly normal.
func (rv *RandomVariate) GaussianSample() float64 {
	return (rv.Uniform()*2 - 1) + (rv.Uniform()*2 - 1) + (rv.Uniform()*2 - 1)
}

// GaussianRound scales a GaussianSample and rounds it. No clamping.
func (rv *RandomVariate) GaussianRound(mean, stddev float64) int {
	return roundHalfUp(rv.GaussianSample()*stddev + mean)
}

// IntRange returns a uniform integer in [lo, hi]
func (rv *RandomVariate) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return int(math.Floor(rv.Uniform()*float64(hi-lo+1))) + lo
}

// Index returns a uniform index in [0, n)
func (rv *RandomVariate) Index(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(math.Floor(rv.Uniform() * float64(n)))
	if i >= n {
		i = n - 1
	}
	return i
}

// roundHalfUp rounds halves toward positive infinity
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
