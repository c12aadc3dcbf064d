package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestPoles_SecondOrder(t *testing.T) {
	p1 := complex(0.72, 0.19)
	p2 := cmplx.Conj(p1)
	c := Coefficients{B0: 1, A1: -real(p1 + p2), A2: real(p1 * p2)}

	got := c.Poles()
	match := (cmplx.Abs(got[0]-p1) < 1e-12 && cmplx.Abs(got[1]-p2) < 1e-12) ||
		(cmplx.Abs(got[0]-p2) < 1e-12 && cmplx.Abs(got[1]-p1) < 1e-12)
	if !match {
		t.Fatalf("poles = %v, want {%v, %v}", got, p1, p2)
	}
}

func TestIsStable(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want bool
	}{
		{"passthrough", Coefficients{B0: 1}, true},
		{"damped", Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}, true},
		{"pole on unit circle", Coefficients{B0: 1, A1: -1}, false},
		{"pole outside", Coefficients{B0: 1, A1: -2.1, A2: 1.1}, false},
		{"NaN coefficient", Coefficients{B0: math.NaN()}, false},
		{"Inf coefficient", Coefficients{B0: 1, A1: math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsStable(); got != tt.want {
				t.Fatalf("IsStable() = %v, want %v", got, tt.want)
			}
		})
	}
}
