package biquad

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-bassmgr/dsp/filter/biquad/internal/kernel"
)

// Coefficients is one second-order section with a0 normalized to 1.
//
// Processing uses Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
//
// A first-order section has B2 = A2 = 0. Coefficients is a plain value:
// copying it is how a designed section is shared between filters.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Section is one biquad with its own delay line.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section running c from zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place with the block kernel selected for the
// running CPU. It does not allocate. Delay-line values that have decayed
// below 1e-30 are flushed to zero at the end of the block.
func (s *Section) ProcessBlock(buf []float64) {
	if len(buf) == 0 {
		return
	}
	d0, d1 := blockKernel()(kernel.Coefficients(s.Coefficients), s.d0, s.d1, buf)
	s.d0 = flushDenormal(d0)
	s.d1 = flushDenormal(d1)
}

var (
	kernelOnce sync.Once
	kernelFn   kernel.BlockFn
)

func blockKernel() kernel.BlockFn {
	kernelOnce.Do(func() {
		kernelFn = selectKernel(cpu.DetectFeatures()).Block
	})
	return kernelFn
}

func selectKernel(features cpu.Features) kernel.Entry {
	e, ok := kernel.Default.Select(features)
	if !ok {
		panic("biquad: no block kernel registered")
	}
	return e
}

// Reset zeroes the delay line.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// State returns the delay line as [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState overwrites the delay line.
func (s *Section) SetState(state [2]float64) {
	s.d0, s.d1 = state[0], state[1]
}

func flushDenormal(x float64) float64 {
	const tiny = 1e-30
	if x > -tiny && x < tiny {
		return 0
	}
	return x
}
