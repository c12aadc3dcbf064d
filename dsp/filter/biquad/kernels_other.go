//go:build !amd64 || purego

package biquad

import (
	_ "github.com/cwbudde/algo-bassmgr/dsp/filter/biquad/internal/kernel/generic" // portable fallback
)
