// Package testutil provides deterministic signal builders and tolerance
// assertions shared by the filter tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave at a normalized frequency
// (cycles per sample).
func DeterministicSine(freq, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freq
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude,
// amplitude] from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Constant generates a constant-valued signal.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates a linear ramp from 0 with the given slope.
func Ramp(slope float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = slope * float64(i)
	}
	return out
}

// WithSpikes returns a copy of base with value placed at the given
// indices. Out-of-range indices are ignored.
func WithSpikes(base []float64, value float64, indices ...int) []float64 {
	out := make([]float64, len(base))
	copy(out, base)
	for _, idx := range indices {
		if idx >= 0 && idx < len(out) {
			out[idx] = value
		}
	}
	return out
}
