// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. A [Cascade] runs a fixed
// number of stages that all share one coefficient set, which is how the
// crossover high-pass bank builds its steep slope. A [Chain] cascades
// sections with distinct coefficients (Butterworth, Linkwitz-Riley).
//
// Coefficients and delay-line state are float64 even though the engine's
// buffers are float32: low cutoffs at high sample rates put the poles very
// close to the unit circle.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design.
package biquad
