package testutil

import (
	"math"

	"github.com/cwbudde/algo-bassmgr/dsp/surround"
)

// Float32 converts a float64 signal to float32.
func Float32(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}
	return out
}

// PeakAbs returns the largest absolute value of x, or 0 for an empty slice.
func PeakAbs[T ~float32 | ~float64](x []T) float64 {
	peak := 0.0
	for _, v := range x {
		peak = math.Max(peak, math.Abs(float64(v)))
	}
	return peak
}

// SilentBlock returns a zeroed float32 5.1 block.
func SilentBlock(frames int) surround.Block[float32] {
	return surround.NewBlock[float32](frames)
}

// SineBlock returns a float32 5.1 block with a deterministic sine on the
// given channels and silence elsewhere.
func SineBlock(frames int, freqHz, sampleRate, amplitude float64, channels ...surround.Channel) surround.Block[float32] {
	blk := surround.NewBlock[float32](frames)
	sine := Float32(DeterministicSine(freqHz, sampleRate, amplitude, frames))
	for _, ch := range channels {
		copy(blk[ch], sine)
	}
	return blk
}
