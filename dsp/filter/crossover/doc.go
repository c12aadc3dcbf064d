// Package crossover splits a 5.1 block into its bass-managed bands.
//
// [Bank] high-passes the five main channels (L, R, C, LS, RS) with one
// fixed-length cascade per channel. All cascades share a single
// coefficient value that is designed once per cutoff change and broadcast,
// so every main channel sees an identical response.
//
// [LowpassSum] folds the mains into one mono signal and low-passes it with
// a Linkwitz-Riley filter. That low band is what the LFE path later mixes
// into the subwoofer channel.
//
// Both types are meant for a single audio goroutine: they keep mutable
// filter state and are not safe for concurrent use.
package crossover
