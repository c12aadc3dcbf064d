package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t at the first index where got and want
// differ by more than eps, or if their lengths differ.
func RequireSliceNearlyEqual[T ~float32 | ~float64](t testing.TB, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length: got %d, want %d", len(got), len(want))
	}
	if i, diff := firstMismatch(got, want, eps); i >= 0 {
		t.Fatalf("index %d: got %v, want %v (|diff| %g > %g)", i, got[i], want[i], diff, eps)
	}
}

// firstMismatch returns the first index whose difference exceeds eps and
// that difference, or -1. A NaN on either side always mismatches.
func firstMismatch[T ~float32 | ~float64](got, want []T, eps float64) (int, float64) {
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if !(diff <= eps) {
			return i, diff
		}
	}
	return -1, 0
}
