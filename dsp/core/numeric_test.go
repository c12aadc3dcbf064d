package core

import (
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{0, true},
		{-250, true},
		{math.MaxFloat64, true},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}
	for _, tt := range tests {
		if got := IsFinite(tt.x); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestDBToLinear(t *testing.T) {
	tests := []struct {
		db, want float64
	}{
		{0, 1},
		{10, 3.1622776601683795},
		{20, 10},
		{-6.020599913279624, 0.5},
	}
	for _, tt := range tests {
		if got := DBToLinear(tt.db); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DBToLinear(%v) = %v, want %v", tt.db, got, tt.want)
		}
	}
}

func TestLinearToDB(t *testing.T) {
	for _, db := range []float64{-60, -6, 0, 10} {
		if got := LinearToDB(DBToLinear(db)); math.Abs(got-db) > 1e-10 {
			t.Errorf("round trip %v dB = %v", db, got)
		}
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Error("LinearToDB(0) should be -Inf")
	}
	if !math.IsNaN(LinearToDB(-0.5)) {
		t.Error("LinearToDB(-0.5) should be NaN")
	}
}
