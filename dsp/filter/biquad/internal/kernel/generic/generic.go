// Package generic registers the portable biquad kernel. It is always
// available and is the fallback when no wider kernel applies.
package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-bassmgr/dsp/filter/biquad/internal/kernel"
)

func init() {
	kernel.Default.Register(kernel.Entry{
		Name:     "generic",
		Level:    cpu.SIMDNone,
		Priority: 0,
		Block:    Block,
	})
}

// Block runs two samples per iteration with the delay line in registers.
func Block(c kernel.Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	n := len(buf) &^ 1
	for i := 0; i < n; i += 2 {
		x := buf[i]
		y := c.B0*x + d0
		t0 := c.B1*x - c.A1*y + d1
		t1 := c.B2*x - c.A2*y
		buf[i] = y

		x = buf[i+1]
		y = c.B0*x + t0
		d0 = c.B1*x - c.A1*y + t1
		d1 = c.B2*x - c.A2*y
		buf[i+1] = y
	}

	if n < len(buf) {
		x := buf[n]
		y := c.B0*x + d0
		d0 = c.B1*x - c.A1*y + d1
		d1 = c.B2*x - c.A2*y
		buf[n] = y
	}
	return d0, d1
}
