// Package bass is the 5.1 bass management engine.
//
// For every block the engine
//
//  1. captures the input peaks for the meter,
//  2. sums L, R, C, LS and RS to mono,
//  3. low-passes the sum with a Linkwitz-Riley filter at the crossover,
//  4. high-passes the five mains in place with matched cascades,
//  5. low-passes the LFE at its own cutoff, applies the LFE boost and adds
//     the low-passed sum,
//  6. picks up new parameters, moving each cutoff one ramp step,
//  7. captures the output peaks for the meter.
//
// [Engine.Process] runs on the audio goroutine. [Engine.SetParameters] may be
// called from any goroutine; the new values take effect at step 6 of the
// next block. [Engine.Tick] and the level readers belong to a monitor
// goroutine.
package bass
