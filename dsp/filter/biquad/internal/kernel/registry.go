// Package kernel holds the block-processing implementations of one biquad
// section and picks the best one for the running CPU.
package kernel

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients mirrors biquad.Coefficients so the two convert directly.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// BlockFn filters buf in place through one DF2T section starting from the
// delay line (d0, d1) and returns the delay line after the last sample.
type BlockFn func(c Coefficients, d0, d1 float64, buf []float64) (float64, float64)

// Entry is one registered implementation. Among the entries a CPU supports,
// the one with the highest Priority wins.
type Entry struct {
	Name     string
	Level    cpu.SIMDLevel
	Priority int
	Block    BlockFn
}

// Registry is a set of entries safe for concurrent registration and lookup.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Default is filled by the init functions of the implementation packages.
var Default = &Registry{}

// Register adds e, keeping entries ordered by descending priority.
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	slices.SortStableFunc(r.entries, func(a, b Entry) int { return b.Priority - a.Priority })
}

// Select returns the best entry supported by features, or false if none is.
func (r *Registry) Select(features cpu.Features) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Block != nil && cpu.Supports(features, e.Level) {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the registered entries, best first.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}
