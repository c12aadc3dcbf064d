package biquad

// Cascade is a fixed-length series of identical biquad stages. Every stage
// uses the same coefficient set and keeps its own delay line; the output of
// stage i feeds stage i+1.
//
// The stage count is fixed at construction. SetCoefficients replaces the
// shared coefficients for all stages at once and preserves the delay lines,
// so a coefficient update between two blocks does not restart the filter.
type Cascade struct {
	coeffs Coefficients
	stages []Section
}

// NewCascade creates a cascade of n stages sharing c. n must be positive.
func NewCascade(n int, c Coefficients) *Cascade {
	if n <= 0 {
		panic("biquad: cascade needs at least one stage")
	}

	cs := &Cascade{stages: make([]Section, n)}
	cs.SetCoefficients(c)

	return cs
}

// SetCoefficients applies c to every stage. Delay-line state is kept.
func (c *Cascade) SetCoefficients(coeffs Coefficients) {
	c.coeffs = coeffs
	for i := range c.stages {
		c.stages[i].Coefficients = coeffs
	}
}

// Coefficients returns the coefficient set shared by all stages.
func (c *Cascade) Coefficients() Coefficients {
	return c.coeffs
}

// NumStages returns the number of stages.
func (c *Cascade) NumStages() int {
	return len(c.stages)
}

// ProcessSample runs x through every stage in order.
func (c *Cascade) ProcessSample(x float64) float64 {
	for i := range c.stages {
		x = c.stages[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters buf in place through every stage. Zero-alloc.
func (c *Cascade) ProcessBlock(buf []float64) {
	for i := range c.stages {
		c.stages[i].ProcessBlock(buf)
	}
}

// Reset clears the delay lines of all stages.
func (c *Cascade) Reset() {
	for i := range c.stages {
		c.stages[i].Reset()
	}
}

// State returns a snapshot of all stage delay lines.
func (c *Cascade) State() [][2]float64 {
	states := make([][2]float64, len(c.stages))
	for i := range c.stages {
		states[i] = c.stages[i].State()
	}

	return states
}

// SetState restores previously saved stage states. The slice length must
// match NumStages.
func (c *Cascade) SetState(states [][2]float64) {
	for i := range c.stages {
		c.stages[i].SetState(states[i])
	}
}
