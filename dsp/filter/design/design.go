package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-bassmgr/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

var (
	// ErrInvalidFrequency is returned for a cutoff that is not in (0, Nyquist).
	ErrInvalidFrequency = errors.New("design: frequency must be in (0, sampleRate/2)")

	// ErrInvalidSampleRate is returned for a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("design: sample rate must be > 0 and finite")

	// ErrInvalidOrder is returned for a filter order the designer cannot build.
	ErrInvalidOrder = errors.New("design: invalid filter order")
)

// Lowpass designs an RBJ lowpass biquad at freq (Hz) with quality factor q.
// A non-positive q falls back to the Butterworth value 1/sqrt(2).
func Lowpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	w0, err := normalizedW0(freq, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b1 := 1 - cw
	b0 := b1 / 2
	b2 := b0
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2), nil
}

// Highpass designs an RBJ highpass biquad at freq (Hz) with quality factor q.
// A non-positive q falls back to the Butterworth value 1/sqrt(2).
func Highpass(freq, q, sampleRate float64) (biquad.Coefficients, error) {
	w0, err := normalizedW0(freq, sampleRate)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := b0
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2), nil
}

// validate checks a cutoff/sample-rate pair.
func validate(freq, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return fmt.Errorf("%w: %v Hz at %v Hz", ErrInvalidFrequency, freq, sampleRate)
	}

	return nil
}

func normalizedW0(freq, sampleRate float64) (float64, error) {
	if err := validate(freq, sampleRate); err != nil {
		return 0, err
	}

	return 2 * math.Pi * freq / sampleRate, nil
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
