package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicSine returns n samples of amplitude*sin(2*pi*f*i/sr),
// starting at phase zero.
func DeterministicSine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	w := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}
	return out
}

// DeterministicNoise returns n uniform samples in [-amplitude, amplitude).
// The same seed always yields the same sequence.
func DeterministicNoise(seed uint64, amplitude float64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// Impulse returns n zeros with a single 1 at pos. An out-of-range pos
// yields silence.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}

// DC returns n copies of value.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns n copies of 1.
func Ones(n int) []float64 { return DC(1, n) }
