// Package surround defines the fixed 5.1 channel layout used by the bass
// manager and a channel-major sample block for it.
//
// The layout is a closed set: [L], [R], [C], [LFE], [LS], [RS], in that
// buffer order. [Mains] lists the five full-range channels in the order the
// crossover processes them; the LFE channel has its own path.
package surround
