// Package response measures and predicts the frequency response of the
// bass manager, both by running impulses through an engine and
// analytically from its filter designs.
package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-bassmgr/dsp/bass"
	"github.com/cwbudde/algo-bassmgr/dsp/core"
	"github.com/cwbudde/algo-bassmgr/dsp/filter/crossover"
	"github.com/cwbudde/algo-bassmgr/dsp/surround"
	"github.com/cwbudde/algo-vecmath"
)

// ErrNotPrepared is returned when measuring an engine that was never prepared.
var ErrNotPrepared = errors.New("response: engine not prepared")

// ImpulseResponse feeds a unit impulse into channel in of a prepared engine
// and returns the first n samples of channel out. The engine is re-prepared
// before and after the measurement, so filter state and meters are cleared.
func ImpulseResponse(e *bass.Engine, in, out surround.Channel, n int) ([]float64, error) {
	if !e.Prepared() {
		return nil, ErrNotPrepared
	}
	if !in.Valid() || !out.Valid() {
		return nil, fmt.Errorf("response: invalid channel pair %v -> %v", in, out)
	}
	if n <= 0 {
		return nil, fmt.Errorf("response: length must be > 0, got %d", n)
	}

	sr, block := e.SampleRate(), e.MaxBlockSize()
	if err := e.Prepare(sr, block); err != nil {
		return nil, err
	}

	blk := surround.NewBlock[float32](n)
	blk[in][0] = 1
	e.Process(blk)

	ir := make([]float64, n)
	for i, v := range blk[out] {
		ir[i] = float64(v)
	}

	return ir, e.Prepare(sr, block)
}

// Spectrum returns the magnitude spectrum |X[k]|, k = 0..fftSize/2, of ir
// zero-padded or truncated to fftSize samples.
func Spectrum(ir []float64, fftSize int) ([]float64, error) {
	if fftSize < 2 {
		return nil, fmt.Errorf("response: FFT size must be >= 2, got %d", fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i := 0; i < len(ir) && i < fftSize; i++ {
		in[i] = complex(ir[i], 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("response: FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k], im[k] = real(freq[k]), imag(freq[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// MagnitudeDBAt returns the level in dB of the bin of mag nearest to freq.
// mag is a Spectrum result for sampleRate.
func MagnitudeDBAt(mag []float64, freq, sampleRate float64) float64 {
	if len(mag) < 2 || sampleRate <= 0 {
		return math.Inf(-1)
	}

	fftSize := 2 * (len(mag) - 1)
	bin := int(math.Round(freq * float64(fftSize) / sampleRate))
	bin = max(0, min(bin, len(mag)-1))
	return core.LinearToDB(mag[bin])
}

// BinFrequency returns the centre frequency of bin k of an fftSize-point FFT.
func BinFrequency(k, fftSize int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(fftSize)
}

// CrossoverSum returns the analytic response of one main channel through
// the high-pass bank plus its contribution through the summing low-pass.
func CrossoverSum(bank *crossover.Bank, sum *crossover.LowpassSum, freq, sampleRate float64) complex128 {
	return bank.Response(freq, sampleRate) + sum.Response(freq, sampleRate)
}

// Row is one line of an analytic response table. All levels are in dB.
type Row struct {
	FreqHz float64
	// Main is a main channel through the high-pass bank.
	Main float64
	// Redirected is a main channel through the summing low-pass.
	Redirected float64
	// LFE is the LFE channel through its low-pass and boost.
	LFE float64
	// Sum is Main and Redirected combined, as heard when the subwoofer
	// and the main speaker are summed acoustically.
	Sum float64
}

// Table evaluates the analytic response of a prepared engine at freqs.
func Table(e *bass.Engine, freqs []float64) ([]Row, error) {
	if !e.Prepared() {
		return nil, ErrNotPrepared
	}

	sr := e.SampleRate()
	rows := make([]Row, len(freqs))
	for i, f := range freqs {
		hp := e.Bank().Response(f, sr)
		lp := e.LowpassSum().Response(f, sr)
		rows[i] = Row{
			FreqHz:     f,
			Main:       db(hp),
			Redirected: db(lp),
			LFE:        db(e.LFE().Response(f, sr)),
			Sum:        db(hp + lp),
		}
	}
	return rows, nil
}

// LogFrequencies returns n frequencies spaced logarithmically from lo to hi.
func LogFrequencies(lo, hi float64, n int) []float64 {
	if n <= 0 || lo <= 0 || hi <= lo {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}

	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}
	return out
}

func db(h complex128) float64 {
	return core.LinearToDB(cmplx.Abs(h))
}
