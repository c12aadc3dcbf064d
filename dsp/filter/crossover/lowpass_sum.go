package crossover

import (
	"fmt"

	"github.com/cwbudde/algo-bassmgr/dsp/filter/biquad"
	"github.com/cwbudde/algo-bassmgr/dsp/filter/design"
	"github.com/cwbudde/algo-bassmgr/dsp/surround"
	"github.com/cwbudde/algo-vecmath"
)

// LowpassSum sums the five main channels to mono and low-passes the sum
// with a Linkwitz-Riley filter.
type LowpassSum struct {
	order    int
	cutoff   float64
	lp       *biquad.Chain
	sections []biquad.Coefficients

	scratch []float64
}

// NewLowpassSum creates a summing low-pass of the given Linkwitz-Riley
// order (positive and even). It passes the sum unchanged until SetCutoff
// succeeds, and has no scratch until Prepare is called.
func NewLowpassSum(order int) (*LowpassSum, error) {
	if order <= 0 || order%2 != 0 {
		return nil, fmt.Errorf("crossover: order must be a positive even integer, got %d", order)
	}

	sections := make([]biquad.Coefficients, design.LinkwitzRileySections(order))
	for i := range sections {
		sections[i] = passthrough
	}
	return &LowpassSum{
		order:    order,
		lp:       biquad.NewChain(sections),
		sections: sections,
	}, nil
}

// Prepare allocates the mono scratch for blocks of up to maxFrames.
// It is the only method that allocates.
func (s *LowpassSum) Prepare(maxFrames int) {
	if cap(s.scratch) < maxFrames {
		s.scratch = make([]float64, maxFrames)
	}
	s.scratch = s.scratch[:maxFrames]
}

// SetCutoff redesigns the low-pass at hz. Filter state is kept and nothing
// is allocated.
func (s *LowpassSum) SetCutoff(hz, sampleRate float64) error {
	if err := design.LinkwitzRileyLPInto(s.sections, hz, s.order, sampleRate); err != nil {
		return fmt.Errorf("crossover: summing low-pass: %w", err)
	}

	s.lp.UpdateCoefficients(s.sections)
	s.cutoff = hz
	return nil
}

// Sum writes L+R+C+LS+RS of blk into the scratch buffer and returns it.
// The LFE channel is excluded. The returned slice is valid until the next
// call and panics if blk is longer than the prepared size.
func (s *LowpassSum) Sum(blk *surround.Block[float64]) []float64 {
	n := blk.Frames()
	if n > len(s.scratch) {
		panic(fmt.Sprintf("crossover: block of %d frames exceeds prepared size %d", n, len(s.scratch)))
	}

	out := s.scratch[:n]
	vecmath.AddBlock(out, blk[surround.Mains[0]], blk[surround.Mains[1]])
	for _, ch := range surround.Mains[2:] {
		vecmath.AddBlockInPlace(out, blk[ch])
	}
	return out
}

// Lowpass filters x in place.
func (s *LowpassSum) Lowpass(x []float64) {
	s.lp.ProcessBlock(x)
}

// Process sums the mains of blk and low-passes the result. It must run
// before the bank modifies the mains.
func (s *LowpassSum) Process(blk *surround.Block[float64]) []float64 {
	out := s.Sum(blk)
	s.lp.ProcessBlock(out)
	return out
}

// Reset clears the filter state.
func (s *LowpassSum) Reset() { s.lp.Reset() }

// Cutoff returns the last cutoff installed by SetCutoff, or 0.
func (s *LowpassSum) Cutoff() float64 { return s.cutoff }

// Order returns the Linkwitz-Riley order.
func (s *LowpassSum) Order() int { return s.order }

// Response returns the complex response of the low-pass for a single
// channel feeding the sum.
func (s *LowpassSum) Response(freqHz, sampleRate float64) complex128 {
	return s.lp.Response(freqHz, sampleRate)
}
