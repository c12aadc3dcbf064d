package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestResponse_DirectEvaluation(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	const sr = 48000.0

	for _, f := range []float64{0, 20, 80, 1000, 12000, 24000} {
		w := 2 * math.Pi * f / sr
		z1 := cmplx.Exp(complex(0, -w))
		z2 := z1 * z1
		want := (complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2) /
			(1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2)

		if got := c.Response(f, sr); cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("f=%v: got %v, want %v", f, got, want)
		}
	}
}

func TestResponse_DCAndNyquist(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	const sr = 44100.0

	// H(1) = sum(b) / (1 + a1 + a2)
	wantDC := (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
	if got := real(c.Response(0, sr)); !almostEqual(got, wantDC, 1e-12) {
		t.Errorf("DC = %v, want %v", got, wantDC)
	}

	// H(-1) = (b0 - b1 + b2) / (1 - a1 + a2), zero for this section
	if got := cmplx.Abs(c.Response(sr/2, sr)); got > 1e-12 {
		t.Errorf("Nyquist = %v, want 0", got)
	}
}

func TestResponse_FirstOrderAllpassIsFlat(t *testing.T) {
	const a = -0.6
	c := Coefficients{B0: a, B1: 1, A1: a}

	for _, f := range []float64{10, 100, 1000, 10000} {
		if db := c.MagnitudeDB(f, 48000); math.Abs(db) > 1e-9 {
			t.Errorf("f=%v: %v dB, want 0", f, db)
		}
	}
}

func TestChain_ResponseIsProductOfSections(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewChain(coeffs)
	const sr = 96000.0

	for _, f := range []float64{30, 300, 3000, 30000} {
		want := coeffs[0].Response(f, sr) * coeffs[1].Response(f, sr)
		got := c.Response(f, sr)
		if cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("f=%v: got %v, want %v", f, got, want)
		}

		wantDB := coeffs[0].MagnitudeDB(f, sr) + coeffs[1].MagnitudeDB(f, sr)
		if !almostEqual(c.MagnitudeDB(f, sr), wantDB, 1e-9) {
			t.Errorf("f=%v: MagnitudeDB=%v, want %v", f, c.MagnitudeDB(f, sr), wantDB)
		}
	}
}

func TestResponse_MatchesSteadyStateSine(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	const (
		sr = 48000.0
		f  = 3000.0
		n  = 4800
	)

	// Project the settled half onto e^{-jwn}; it spans a whole number of periods.
	s := NewSection(c)
	var acc complex128
	for i := range n {
		phase := 2 * math.Pi * f * float64(i) / sr
		y := s.ProcessSample(math.Sin(phase))
		if i >= n/2 {
			acc += complex(y, 0) * cmplx.Rect(1, -phase)
		}
	}
	amp := 2 * cmplx.Abs(acc) / (n / 2)

	want := cmplx.Abs(c.Response(f, sr))
	if !almostEqual(amp, want, 1e-6) {
		t.Fatalf("measured amplitude = %v, |H| = %v", amp, want)
	}
}
