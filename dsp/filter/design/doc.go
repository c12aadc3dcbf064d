// Package design provides the IIR coefficient designers used by the bass
// manager.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: RBJ-style second-order
// high-/low-pass sections, Butterworth cascades of arbitrary order and
// Linkwitz-Riley cascades built from two identical Butterworth prototypes.
//
// [HighpassStage] is the designer behind the crossover high-pass bank: it
// returns one section that the bank replicates across every stage of its
// cascades.
//
// Unlike the runtime, designers validate their input and report
// [ErrInvalidFrequency], [ErrInvalidSampleRate] or [ErrInvalidOrder]
// instead of returning an unusable filter.
package design
