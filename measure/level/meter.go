package level

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cwbudde/algo-bassmgr/dsp/surround"
	"github.com/cwbudde/algo-vecmath"
)

// Side selects the input or output meter bank.
type Side int

const (
	Input Side = iota
	Output

	// NumSides is the number of meter banks.
	NumSides = 2
)

func (s Side) String() string {
	switch s {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Valid reports whether s is Input or Output.
func (s Side) Valid() bool { return s == Input || s == Output }

// Meter is a two-bank, six-channel decaying peak meter.
type Meter struct {
	cfg   MeterConfig
	decay float32

	mu  sync.Mutex
	acc [NumSides][surround.NumChannels]float32

	readable [NumSides][surround.NumChannels]atomic.Uint32
	dropped  atomic.Uint64
}

// NewMeter creates a meter with all levels at zero.
func NewMeter(opts ...MeterOption) *Meter {
	cfg := ApplyMeterOptions(opts...)
	return &Meter{
		cfg:   cfg,
		decay: float32(cfg.Decay),
	}
}

// Config returns the meter configuration.
func (m *Meter) Config() MeterConfig { return m.cfg }

// TryCapture merges per-channel block peaks into the accumulator of side.
// It does not block: if the lock is held the capture is dropped and false
// is returned.
func (m *Meter) TryCapture(side Side, peaks [surround.NumChannels]float32) bool {
	if !side.Valid() {
		return false
	}
	if !m.mu.TryLock() {
		m.dropped.Add(1)
		return false
	}

	acc := &m.acc[side]
	for ch, p := range peaks {
		if p > acc[ch] {
			acc[ch] = p
		}
	}
	m.mu.Unlock()
	return true
}

// Tick decays every readable level and folds in the accumulated peaks:
// readable = max(readable*decay, accumulator), then the accumulator is
// cleared. Tick waits for the lock.
func (m *Meter) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for s := range m.acc {
		for ch, a := range m.acc[s] {
			r := math.Float32frombits(m.readable[s][ch].Load()) * m.decay
			if a > r {
				r = a
			}
			m.readable[s][ch].Store(math.Float32bits(r))
			m.acc[s][ch] = 0
		}
	}
}

// Level returns the readable level of one channel, or 0 for an invalid side
// or channel.
func (m *Meter) Level(side Side, ch surround.Channel) float32 {
	if !side.Valid() || !ch.Valid() {
		return 0
	}
	return math.Float32frombits(m.readable[side][ch].Load())
}

// Snapshot returns the readable levels of every channel of side.
func (m *Meter) Snapshot(side Side) [surround.NumChannels]float32 {
	var out [surround.NumChannels]float32
	if !side.Valid() {
		return out
	}
	for ch := range out {
		out[ch] = math.Float32frombits(m.readable[side][ch].Load())
	}
	return out
}

// Dropped returns the number of captures skipped because of contention.
func (m *Meter) Dropped() uint64 { return m.dropped.Load() }

// Reset clears accumulators and readable levels.
func (m *Meter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.acc = [NumSides][surround.NumChannels]float32{}
	for s := range m.readable {
		for ch := range m.readable[s] {
			m.readable[s][ch].Store(0)
		}
	}
	m.dropped.Store(0)
}

// Run calls Tick at the configured rate until ctx is done, then returns
// ctx.Err(). onTick, if not nil, runs after every tick.
func (m *Meter) Run(ctx context.Context, onTick func()) error {
	ticker := time.NewTicker(tickInterval(m.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.Tick()
			if onTick != nil {
				onTick()
			}
		}
	}
}

// Peaks returns the absolute peak of every channel of blk.
func Peaks(blk *surround.Block[float64]) [surround.NumChannels]float32 {
	var out [surround.NumChannels]float32
	for ch, x := range blk {
		if len(x) > 0 {
			out[ch] = float32(vecmath.MaxAbs(x))
		}
	}
	return out
}

// tickInterval converts a rate to a ticker period of at least one
// millisecond. Unusable rates fall back to DefaultTickRate.
func tickInterval(hz float64) time.Duration {
	if !(hz > 0) || hz > MaxTickRate {
		hz = DefaultTickRate
	}
	return max(time.Duration(float64(time.Second)/hz), time.Millisecond)
}
