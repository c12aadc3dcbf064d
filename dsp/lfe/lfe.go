// Package lfe implements the subwoofer channel path of the bass manager:
// low-pass the LFE input, apply the LFE boost and mix in the low band
// redirected from the main channels.
package lfe

import (
	"fmt"

	"github.com/cwbudde/algo-bassmgr/dsp/core"
	"github.com/cwbudde/algo-bassmgr/dsp/filter/biquad"
	"github.com/cwbudde/algo-bassmgr/dsp/filter/design"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultBoostDB is the in-band gain applied to the LFE channel relative to
// the mains.
const DefaultBoostDB = 10.0

// Path filters and boosts the LFE channel and folds the redirected bass into
// it. A Path is not safe for concurrent use.
type Path struct {
	order    int
	cutoff   float64
	lp       *biquad.Chain
	sections []biquad.Coefficients

	boost   float64
	enabled bool
	gain    float64
	target  float64
}

// New creates an LFE path with a Linkwitz-Riley low-pass of the given order
// and a boost of boostDB. The boost starts enabled. The low-pass passes the
// signal unchanged until SetCutoff succeeds.
func New(order int, boostDB float64) (*Path, error) {
	if order <= 0 || order%2 != 0 {
		return nil, fmt.Errorf("lfe: order must be a positive even integer, got %d", order)
	}
	if !core.IsFinite(boostDB) {
		return nil, fmt.Errorf("lfe: boost must be finite, got %v", boostDB)
	}

	sections := make([]biquad.Coefficients, design.LinkwitzRileySections(order))
	for i := range sections {
		sections[i] = biquad.Coefficients{B0: 1}
	}

	g := core.DBToLinear(boostDB)
	return &Path{
		order:    order,
		lp:       biquad.NewChain(sections),
		sections: sections,
		boost:    g,
		enabled:  true,
		gain:     g,
		target:   g,
	}, nil
}

// SetCutoff redesigns the LFE low-pass. The summed low band from the mains
// is filtered elsewhere and is not affected. SetCutoff does not allocate.
func (p *Path) SetCutoff(hz, sampleRate float64) error {
	if err := design.LinkwitzRileyLPInto(p.sections, hz, p.order, sampleRate); err != nil {
		return fmt.Errorf("lfe: low-pass: %w", err)
	}

	p.lp.UpdateCoefficients(p.sections)
	p.cutoff = hz
	return nil
}

// SetBoost enables or disables the boost. The applied gain moves to the new
// value linearly over the next processed block.
func (p *Path) SetBoost(enabled bool) {
	p.enabled = enabled
	if enabled {
		p.target = p.boost
	} else {
		p.target = 1
	}
}

// Process low-passes lfe in place, applies the boost gain and adds low
// sample by sample. Both slices must have the same length.
func (p *Path) Process(lfe, low []float64) {
	p.lp.ProcessBlock(lfe)

	switch {
	case p.gain != p.target && len(lfe) > 0:
		inc := (p.target - p.gain) / float64(len(lfe))
		g := p.gain
		for i := range lfe {
			g += inc
			lfe[i] *= g
		}
		p.gain = p.target
	case p.gain != 1:
		vecmath.ScaleBlockInPlace(lfe, p.gain)
	}

	vecmath.AddBlockInPlace(lfe, low)
}

// Reset clears the filter state and settles the gain on its target.
func (p *Path) Reset() {
	p.lp.Reset()
	p.gain = p.target
}

// Boost returns the linear gain the path is heading to: the configured boost
// when enabled, 1 otherwise.
func (p *Path) Boost() float64 { return p.target }

// BoostEnabled reports whether the boost is enabled.
func (p *Path) BoostEnabled() bool { return p.enabled }

// Gain returns the linear gain applied at the end of the last block.
func (p *Path) Gain() float64 { return p.gain }

// Cutoff returns the last cutoff installed by SetCutoff, or 0.
func (p *Path) Cutoff() float64 { return p.cutoff }

// Response returns the complex response of the LFE low-pass including the
// target gain.
func (p *Path) Response(freqHz, sampleRate float64) complex128 {
	return p.lp.Response(freqHz, sampleRate) * complex(p.target, 0)
}
