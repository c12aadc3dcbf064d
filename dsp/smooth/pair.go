package smooth

// Pair holds the crossover and LFE cutoff ramps of the bass manager.
type Pair struct {
	Crossover Ramp
	LFE       Ramp
}

// Prepare sets the length of both ramps.
func (p *Pair) Prepare(sampleRate, rampSeconds float64) {
	p.Crossover.Prepare(sampleRate, rampSeconds)
	p.LFE.Prepare(sampleRate, rampSeconds)
}

// Reset jumps both ramps to the given values.
func (p *Pair) Reset(crossoverHz, lfeHz float64) {
	p.Crossover.Reset(crossoverHz)
	p.LFE.Reset(lfeHz)
}

// IsActive reports whether either ramp is in progress.
func (p *Pair) IsActive() bool {
	return p.Crossover.IsActive() || p.LFE.IsActive()
}
