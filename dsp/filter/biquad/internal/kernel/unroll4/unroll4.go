//go:build amd64 && !purego

// Package unroll4 registers a four-sample unrolled kernel, selected on
// AVX2-capable amd64 CPUs.
package unroll4

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-bassmgr/dsp/filter/biquad/internal/kernel"
)

func init() {
	kernel.Default.Register(kernel.Entry{
		Name:     "unroll4",
		Level:    cpu.SIMDAVX2,
		Priority: 20,
		Block:    Block,
	})
}

// Block processes four samples per iteration and finishes the remainder one
// at a time.
func Block(c kernel.Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	b0, b1, b2, a1, a2 := c.B0, c.B1, c.B2, c.A1, c.A2

	i := 0
	for ; i+4 <= len(buf); i += 4 {
		q := buf[i : i+4 : i+4]

		y0 := b0*q[0] + d0
		e0 := b1*q[0] - a1*y0 + d1
		e1 := b2*q[0] - a2*y0

		y1 := b0*q[1] + e0
		f0 := b1*q[1] - a1*y1 + e1
		f1 := b2*q[1] - a2*y1

		y2 := b0*q[2] + f0
		g0 := b1*q[2] - a1*y2 + f1
		g1 := b2*q[2] - a2*y2

		y3 := b0*q[3] + g0
		d0 = b1*q[3] - a1*y3 + g1
		d1 = b2*q[3] - a2*y3

		q[0], q[1], q[2], q[3] = y0, y1, y2, y3
	}

	for ; i < len(buf); i++ {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}
	return d0, d1
}
