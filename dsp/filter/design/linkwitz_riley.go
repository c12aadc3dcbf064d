package design

import (
	"fmt"

	"github.com/cwbudde/algo-bassmgr/dsp/filter/biquad"
)

// LinkwitzRileyLP designs a lowpass Linkwitz-Riley cascade of the given order.
//
// A Linkwitz-Riley filter of order 2N is constructed by cascading two
// Butterworth filters of order N. This produces -6.02 dB at the crossover
// frequency and a squared-Butterworth magnitude response.
//
// The order must be a positive even integer (2, 4, 6, 8, …).
func LinkwitzRileyLP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := checkLinkwitzRileyOrder(order); err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, LinkwitzRileySections(order))
	if err := LinkwitzRileyLPInto(sections, freq, order, sampleRate); err != nil {
		return nil, err
	}
	return sections, nil
}

// LinkwitzRileyHP designs a highpass Linkwitz-Riley cascade of the given order.
//
// For orders divisible by 4 the output is in phase with [LinkwitzRileyLP] and
// their sum is allpass. For orders ≡ 2 mod 4 the highpass must be inverted
// before summing.
func LinkwitzRileyHP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := checkLinkwitzRileyOrder(order); err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, LinkwitzRileySections(order))
	if err := LinkwitzRileyHPInto(sections, freq, order, sampleRate); err != nil {
		return nil, err
	}
	return sections, nil
}

// LinkwitzRileySections returns the number of biquad sections of a
// Linkwitz-Riley design of the given even order.
func LinkwitzRileySections(order int) int {
	return 2 * butterworthSections(order/2)
}

// LinkwitzRileyLPInto is the allocation-free form of [LinkwitzRileyLP]:
// it writes the design into dst, which must hold exactly
// LinkwitzRileySections(order) sections.
func LinkwitzRileyLPInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) error {
	return linkwitzRileyInto(dst, freq, order, sampleRate, Lowpass, butterworthFirstOrderLP)
}

// LinkwitzRileyHPInto is the allocation-free form of [LinkwitzRileyHP].
func LinkwitzRileyHPInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) error {
	return linkwitzRileyInto(dst, freq, order, sampleRate, Highpass, butterworthFirstOrderHP)
}

func linkwitzRileyInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64, second sectionDesigner, first firstOrderDesigner) error {
	if err := checkLinkwitzRileyOrder(order); err != nil {
		return err
	}
	if want := LinkwitzRileySections(order); len(dst) != want {
		return fmt.Errorf("%w: LR%d needs %d sections, got %d", ErrInvalidOrder, order, want, len(dst))
	}

	half := len(dst) / 2
	if err := butterworthInto(dst[:half], freq, order/2, sampleRate, second, first); err != nil {
		return err
	}
	copy(dst[half:], dst[:half])
	return nil
}

func checkLinkwitzRileyOrder(order int) error {
	if order <= 0 || order%2 != 0 {
		return fmt.Errorf("%w: Linkwitz-Riley order must be a positive even integer, got %d", ErrInvalidOrder, order)
	}
	return nil
}
