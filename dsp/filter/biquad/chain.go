package biquad

import "fmt"

// Chain runs a fixed list of distinct sections in series. Linkwitz-Riley
// and Butterworth designs, which return one Coefficients value per section,
// are run through a Chain.
type Chain struct {
	sections []Section
}

// NewChain creates a chain with one section per element of coeffs, all
// starting from zero state.
func NewChain(coeffs []Coefficients) *Chain {
	sections := make([]Section, len(coeffs))
	for i, c := range coeffs {
		sections[i].Coefficients = c
	}
	return &Chain{sections: sections}
}

// ProcessSample filters one sample through every section.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}
	return x
}

// ProcessBlock filters buf in place, section by section.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset zeroes every delay line.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of sections.
func (c *Chain) NumSections() int { return len(c.sections) }

// UpdateCoefficients installs a new design while keeping every delay line,
// so a redesign between blocks does not restart the filter. The section
// count is fixed: coeffs must have exactly NumSections elements.
func (c *Chain) UpdateCoefficients(coeffs []Coefficients) {
	if len(coeffs) != len(c.sections) {
		panic(fmt.Sprintf("biquad: chain has %d sections, got %d coefficient sets", len(c.sections), len(coeffs)))
	}
	for i, cf := range coeffs {
		c.sections[i].Coefficients = cf
	}
}

// Section returns section i.
func (c *Chain) Section(i int) *Section { return &c.sections[i] }

// State returns the delay line of every section.
func (c *Chain) State() [][2]float64 {
	out := make([][2]float64, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].State()
	}
	return out
}

// SetState restores delay lines saved with State.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
