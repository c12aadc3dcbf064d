package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bassmgr/dsp/filter/biquad"
)

// HighpassStage designs the single high-pass section that a crossover bank
// replicates over every stage of its cascades.
//
// order selects the Butterworth prototype of the stage: 1 gives a
// first-order section (6 dB/oct per stage), 2 a second-order section with
// Q = 1/sqrt(2) (12 dB/oct per stage). N identical stages give N times the
// slope; the composite is steep but no longer Butterworth-flat at the cutoff.
//
// Returns ErrInvalidFrequency when cutoffHz is not below sampleRate/2.
// HighpassStage does not allocate on success.
func HighpassStage(cutoffHz, sampleRate float64, order int) (biquad.Coefficients, error) {
	switch order {
	case 1:
		if err := validate(cutoffHz, sampleRate); err != nil {
			return biquad.Coefficients{}, err
		}
		return butterworthFirstOrderHP(math.Tan(math.Pi * cutoffHz / sampleRate)), nil
	case 2:
		return Highpass(cutoffHz, defaultQ, sampleRate)
	default:
		return biquad.Coefficients{}, fmt.Errorf("%w: stage order must be 1 or 2, got %d", ErrInvalidOrder, order)
	}
}
