package core

import "math"

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// DBToLinear converts a level in dB to an amplitude ratio.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts an amplitude ratio to dB. Zero maps to -Inf and a
// negative ratio to NaN.
func LinearToDB(ratio float64) float64 {
	switch {
	case ratio < 0:
		return math.NaN()
	case ratio == 0:
		return math.Inf(-1)
	}
	return 20 * math.Log10(ratio)
}
