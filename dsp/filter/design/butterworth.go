package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bassmgr/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	return butterworth(freq, order, sampleRate, Lowpass, butterworthFirstOrderLP)
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	return butterworth(freq, order, sampleRate, Highpass, butterworthFirstOrderHP)
}

type (
	sectionDesigner    func(freq, q, sampleRate float64) (biquad.Coefficients, error)
	firstOrderDesigner func(k float64) biquad.Coefficients
)

func butterworth(freq float64, order int, sampleRate float64, second sectionDesigner, first firstOrderDesigner) ([]biquad.Coefficients, error) {
	if order <= 0 {
		return nil, fmt.Errorf("%w: Butterworth order %d", ErrInvalidOrder, order)
	}

	sections := make([]biquad.Coefficients, butterworthSections(order))
	if err := butterworthInto(sections, freq, order, sampleRate, second, first); err != nil {
		return nil, err
	}
	return sections, nil
}

// butterworthSections returns the number of sections of an order-n design.
func butterworthSections(order int) int {
	return (order + 1) / 2
}

// butterworthInto writes an order-n design into dst, which must hold exactly
// butterworthSections(order) sections. It does not allocate.
func butterworthInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64, second sectionDesigner, first firstOrderDesigner) error {
	if err := validate(freq, sampleRate); err != nil {
		return err
	}

	j := 0
	for i := order/2 - 1; i >= 0; i-- {
		s, err := second(freq, butterworthQ(order, i), sampleRate)
		if err != nil {
			return err
		}
		dst[j] = s
		j++
	}
	if order%2 != 0 {
		dst[j] = first(math.Tan(math.Pi * freq / sampleRate))
	}

	return nil
}

// butterworthQ returns the quality factor for a Butterworth filter section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}

	return 1 / (2 * s)
}

// butterworthFirstOrderLP designs a first-order lowpass section from the
// prewarped frequency k = tan(pi*f/fs).
func butterworthFirstOrderLP(k float64) biquad.Coefficients {
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// butterworthFirstOrderHP designs a first-order highpass section from the
// prewarped frequency k = tan(pi*f/fs).
func butterworthFirstOrderHP(k float64) biquad.Coefficients {
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}
