package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates H(z) on the unit circle at freqHz.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	// z^-1 = e^{-jw}
	zi := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)
	num := complex(c.B0, 0) + zi*(complex(c.B1, 0)+zi*complex(c.B2, 0))
	den := 1 + zi*(complex(c.A1, 0)+zi*complex(c.A2, 0))
	return num / den
}

// MagnitudeDB returns 20*log10|H(f)|.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return toDB(c.Response(freqHz, sampleRate))
}

// Response returns the single-stage response raised to the stage count.
func (c *Cascade) Response(freqHz, sampleRate float64) complex128 {
	h := c.coeffs.Response(freqHz, sampleRate)
	out := complex(1, 0)
	for range c.stages {
		out *= h
	}
	return out
}

// MagnitudeDB returns the cascade magnitude in dB.
func (c *Cascade) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return toDB(c.Response(freqHz, sampleRate))
}

// Response returns the product of the section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	out := complex(1, 0)
	for i := range c.sections {
		out *= c.sections[i].Response(freqHz, sampleRate)
	}
	return out
}

// MagnitudeDB returns the chain magnitude in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return toDB(c.Response(freqHz, sampleRate))
}

func toDB(h complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(h))
}
