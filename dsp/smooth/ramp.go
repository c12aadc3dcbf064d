// Package smooth ramps parameter values so that coefficient changes do not
// produce zipper noise or clicks.
package smooth

import "math"

// DefaultRampSeconds is the ramp length used when none is configured.
const DefaultRampSeconds = 0.001

// Ramp moves a value linearly toward a target in a fixed number of steps.
//
// The step count is derived from a sample rate and a ramp time, but one
// step is taken per Tick call: a caller that ticks once per block stretches
// the ramp to steps*blockSize samples.
//
// A Ramp is not safe for concurrent use.
type Ramp struct {
	steps     int
	countdown int

	current float64
	target  float64
	step    float64
}

// Prepare sets the ramp length to round(sampleRate*rampSeconds) steps and
// jumps to the current target. A zero length makes every SetTarget
// immediate.
func (r *Ramp) Prepare(sampleRate, rampSeconds float64) {
	n := math.Round(sampleRate * rampSeconds)
	if n < 0 || math.IsNaN(n) {
		n = 0
	}
	r.steps = int(n)
	r.Reset(r.target)
}

// Reset jumps to v and stops any ramp in progress.
func (r *Ramp) Reset(v float64) {
	r.current = v
	r.target = v
	r.step = 0
	r.countdown = 0
}

// SetTarget starts a ramp from the current value toward v. Setting the
// target it already has is a no-op, so an unchanged value never restarts a
// ramp in progress.
func (r *Ramp) SetTarget(v float64) {
	if v == r.target {
		return
	}
	if r.steps <= 0 {
		r.Reset(v)
		return
	}

	r.target = v
	r.countdown = r.steps
	r.step = (r.target - r.current) / float64(r.steps)
}

// Tick advances the ramp by one step and returns the new current value.
// The last step lands exactly on the target.
func (r *Ramp) Tick() float64 {
	if r.countdown <= 0 {
		return r.target
	}

	r.countdown--
	if r.countdown == 0 {
		r.current = r.target
	} else {
		r.current += r.step
	}
	return r.current
}

// IsActive reports whether a ramp is in progress.
func (r *Ramp) IsActive() bool { return r.countdown > 0 }

// Current returns the value reached so far.
func (r *Ramp) Current() float64 { return r.current }

// Target returns the value the ramp is heading to.
func (r *Ramp) Target() float64 { return r.target }

// Steps returns the number of steps a full ramp takes.
func (r *Ramp) Steps() int { return r.steps }
