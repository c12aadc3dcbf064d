package bass

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-bassmgr/dsp/core"
)

// Cutoff range accepted by Parameters.Validate.
const (
	MinCutoffHz = 20.0
	MaxCutoffHz = 250.0
)

// ErrInvalidParameter is returned for cutoffs outside [MinCutoffHz, MaxCutoffHz].
var ErrInvalidParameter = errors.New("bass: invalid parameter")

// Parameters are the user-facing controls of the engine.
type Parameters struct {
	// CrossoverHz is the cutoff of the main high-pass bank and of the
	// summing low-pass.
	CrossoverHz float64
	// LFECutoffHz is the cutoff of the LFE channel's own low-pass.
	LFECutoffHz float64
	// LFEBoost enables the in-band LFE gain.
	LFEBoost bool
}

// DefaultParameters returns a 60 Hz crossover, a 120 Hz LFE low-pass and the
// LFE boost enabled.
func DefaultParameters() Parameters {
	return Parameters{
		CrossoverHz: 60,
		LFECutoffHz: 120,
		LFEBoost:    true,
	}
}

// Validate reports whether both cutoffs are finite and within range.
func (p Parameters) Validate() error {
	if err := checkCutoff("crossover", p.CrossoverHz); err != nil {
		return err
	}
	return checkCutoff("LFE cutoff", p.LFECutoffHz)
}

func checkCutoff(name string, hz float64) error {
	if !core.IsFinite(hz) || hz < MinCutoffHz || hz > MaxCutoffHz {
		return fmt.Errorf("%w: %s must be in [%v, %v] Hz, got %v", ErrInvalidParameter, name, MinCutoffHz, MaxCutoffHz, hz)
	}
	return nil
}
