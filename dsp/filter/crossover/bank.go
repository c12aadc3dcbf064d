package crossover

import (
	"fmt"

	"github.com/cwbudde/algo-bassmgr/dsp/filter/biquad"
	"github.com/cwbudde/algo-bassmgr/dsp/filter/design"
	"github.com/cwbudde/algo-bassmgr/dsp/surround"
)

// passthrough is the identity section a bank holds until its first cutoff.
var passthrough = biquad.Coefficients{B0: 1}

// Bank is the high-pass side of the crossover: one biquad.Cascade per main
// channel, all running the same coefficients.
type Bank struct {
	stages     int
	stageOrder int

	cutoff     float64
	sampleRate float64
	coeffs     biquad.Coefficients

	filters [surround.NumMains]*biquad.Cascade
}

// NewBank creates a bank of five cascades with the given number of stages.
// stageOrder selects the Butterworth prototype of one stage (1 or 2).
//
// The bank passes audio unchanged until SetCutoff succeeds.
func NewBank(stages, stageOrder int) (*Bank, error) {
	if stages <= 0 {
		return nil, fmt.Errorf("crossover: stage count must be > 0, got %d", stages)
	}
	if stageOrder != 1 && stageOrder != 2 {
		return nil, fmt.Errorf("crossover: stage order must be 1 or 2, got %d", stageOrder)
	}

	b := &Bank{
		stages:     stages,
		stageOrder: stageOrder,
		coeffs:     passthrough,
	}
	for i := range b.filters {
		b.filters[i] = biquad.NewCascade(stages, passthrough)
	}
	return b, nil
}

// SetCutoff designs the high-pass stage for hz at sampleRate and installs it
// on every cascade. Filter state is kept, so the change is click-free when
// called between blocks. On error the bank is left untouched.
func (b *Bank) SetCutoff(hz, sampleRate float64) error {
	c, err := design.HighpassStage(hz, sampleRate, b.stageOrder)
	if err != nil {
		return fmt.Errorf("crossover: high-pass stage: %w", err)
	}

	b.coeffs = c
	b.cutoff = hz
	b.sampleRate = sampleRate
	for _, f := range b.filters {
		f.SetCoefficients(c)
	}
	return nil
}

// Process high-passes the main channels of blk in place, in the order of
// surround.Mains. The LFE channel is not touched.
func (b *Bank) Process(blk *surround.Block[float64]) {
	for i, ch := range surround.Mains {
		b.filters[i].ProcessBlock(blk[ch])
	}
}

// Reset clears the state of every cascade.
func (b *Bank) Reset() {
	for _, f := range b.filters {
		f.Reset()
	}
}

// Cutoff returns the last cutoff installed by SetCutoff, or 0.
func (b *Bank) Cutoff() float64 { return b.cutoff }

// SampleRate returns the sample rate of the last SetCutoff call, or 0.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// Coefficients returns the stage coefficients shared by all cascades.
func (b *Bank) Coefficients() biquad.Coefficients { return b.coeffs }

// NumStages returns the number of stages per cascade.
func (b *Bank) NumStages() int { return b.stages }

// Cascade returns the cascade filtering the given main channel, or nil for
// the LFE or an invalid channel.
func (b *Bank) Cascade(ch surround.Channel) *biquad.Cascade {
	for i, m := range surround.Mains {
		if m == ch {
			return b.filters[i]
		}
	}
	return nil
}

// Response returns the complex response of one channel's cascade.
func (b *Bank) Response(freqHz, sampleRate float64) complex128 {
	return b.filters[0].Response(freqHz, sampleRate)
}
