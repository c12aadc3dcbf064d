package bass

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cwbudde/algo-bassmgr/dsp/core"
	"github.com/cwbudde/algo-bassmgr/dsp/filter/crossover"
	"github.com/cwbudde/algo-bassmgr/dsp/lfe"
	"github.com/cwbudde/algo-bassmgr/dsp/smooth"
	"github.com/cwbudde/algo-bassmgr/dsp/surround"
	"github.com/cwbudde/algo-bassmgr/measure/level"
)

// ErrNotPrepared is the panic value of Process on an engine that has not
// been prepared.
var ErrNotPrepared = errors.New("bass: engine not prepared")

// ErrInvalidFormat is returned by Prepare for an unusable sample rate or
// block size.
var ErrInvalidFormat = errors.New("bass: invalid stream format")

// Engine is the bass management processor.
type Engine struct {
	cfg    config
	params atomic.Pointer[Parameters]

	bank  *crossover.Bank
	sum   *crossover.LowpassSum
	lfe   *lfe.Path
	ramps smooth.Pair
	meter *level.Meter

	format   core.ProcessorConfig
	prepared bool
	work     surround.Block[float64]
}

// New creates an engine. It must be prepared before Process is called.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	bank, err := crossover.NewBank(cfg.stages, cfg.stageOrder)
	if err != nil {
		return nil, fmt.Errorf("bass: %w", err)
	}
	sum, err := crossover.NewLowpassSum(cfg.lrOrder)
	if err != nil {
		return nil, fmt.Errorf("bass: %w", err)
	}
	path, err := lfe.New(cfg.lrOrder, cfg.boostDB)
	if err != nil {
		return nil, fmt.Errorf("bass: %w", err)
	}

	e := &Engine{
		cfg:   cfg,
		bank:  bank,
		sum:   sum,
		lfe:   path,
		meter: level.NewMeter(cfg.meterOpts...),
	}
	p := cfg.params
	e.params.Store(&p)
	return e, nil
}

// Prepare configures the engine for a stream and resets all state. Every
// filter is designed at the current parameters; nothing is changed when an
// error is returned. Prepare must not run concurrently with Process.
func (e *Engine) Prepare(sampleRate float64, maxBlockSize int) error {
	format := core.ProcessorConfig{SampleRate: sampleRate, BlockSize: maxBlockSize}
	if err := format.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if format.Nyquist() <= MaxCutoffHz {
		return fmt.Errorf("%w: sample rate must be > %v Hz, got %v", ErrInvalidFormat, 2*MaxCutoffHz, sampleRate)
	}

	p := *e.params.Load()
	if err := e.bank.SetCutoff(p.CrossoverHz, sampleRate); err != nil {
		return fmt.Errorf("bass: %w", err)
	}
	if err := e.sum.SetCutoff(p.CrossoverHz, sampleRate); err != nil {
		return fmt.Errorf("bass: %w", err)
	}
	if err := e.lfe.SetCutoff(p.LFECutoffHz, sampleRate); err != nil {
		return fmt.Errorf("bass: %w", err)
	}

	e.bank.Reset()
	e.sum.Reset()
	e.sum.Prepare(maxBlockSize)
	e.lfe.SetBoost(p.LFEBoost)
	e.lfe.Reset()

	e.ramps.Prepare(sampleRate, e.cfg.rampSeconds)
	e.ramps.Reset(p.CrossoverHz, p.LFECutoffHz)

	if e.work[0] == nil || cap(e.work[0]) < maxBlockSize {
		e.work = surround.NewBlock[float64](maxBlockSize)
	} else {
		e.work = e.work.Slice(0, maxBlockSize)
		e.work.Clear()
	}

	e.meter.Reset()

	e.format = format
	e.prepared = true
	return nil
}

// Process runs bass management on blk in place. Blocks longer than the
// prepared maximum are processed in chunks. Process does not allocate or
// block. It panics with ErrNotPrepared before Prepare and on channels of
// unequal length.
func (e *Engine) Process(blk surround.Block[float32]) {
	if !e.prepared {
		panic(ErrNotPrepared)
	}
	if err := blk.Validate(); err != nil {
		panic(err)
	}

	n := blk.Frames()
	for from := 0; from < n; from += e.format.BlockSize {
		to := min(from+e.format.BlockSize, n)
		chunk := blk.Slice(from, to)
		e.processChunk(&chunk)
	}
}

func (e *Engine) processChunk(blk *surround.Block[float32]) {
	w := e.work.Slice(0, blk.Frames())
	for ch := range blk {
		core.Widen(w[ch], blk[ch])
	}

	e.meter.TryCapture(level.Input, level.Peaks(&w))

	low := e.sum.Process(&w)
	e.bank.Process(&w)
	e.lfe.Process(w[surround.LFE], low)

	e.update()

	e.meter.TryCapture(level.Output, level.Peaks(&w))

	for ch := range blk {
		core.Narrow(blk[ch], w[ch])
	}
}

// update picks up the latest parameters and moves each cutoff one ramp
// step. The cutoffs were validated against the sample rate in Prepare and
// SetParameters, so redesigning cannot fail here.
func (e *Engine) update() {
	p := e.params.Load()

	xo := &e.ramps.Crossover
	xo.SetTarget(p.CrossoverHz)
	if xo.IsActive() {
		xo.Tick()
	}
	if hz := xo.Current(); hz != e.bank.Cutoff() {
		_ = e.bank.SetCutoff(hz, e.format.SampleRate)
		_ = e.sum.SetCutoff(hz, e.format.SampleRate)
	}

	lf := &e.ramps.LFE
	lf.SetTarget(p.LFECutoffHz)
	if lf.IsActive() {
		lf.Tick()
	}
	if hz := lf.Current(); hz != e.lfe.Cutoff() {
		_ = e.lfe.SetCutoff(hz, e.format.SampleRate)
	}

	if p.LFEBoost != e.lfe.BoostEnabled() {
		e.lfe.SetBoost(p.LFEBoost)
	}
}

// SetParameters validates p and publishes it to the audio goroutine. It is
// safe to call concurrently with Process.
func (e *Engine) SetParameters(p Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	e.params.Store(&p)
	return nil
}

// Parameters returns the most recently published parameters.
func (e *Engine) Parameters() Parameters { return *e.params.Load() }

// Tick advances the level meter by one monitor period.
func (e *Engine) Tick() { e.meter.Tick() }

// Level returns the metered level of a channel. Only bus 0 exists; any other
// bus or an invalid channel reads 0.
func (e *Engine) Level(isInput bool, bus, channel int) float32 {
	if bus != 0 {
		return 0
	}
	return e.meter.Level(side(isInput), surround.Channel(channel))
}

// Levels returns the metered levels of all channels of one side.
func (e *Engine) Levels(isInput bool) [surround.NumChannels]float32 {
	return e.meter.Snapshot(side(isInput))
}

// Meter returns the engine's level meter.
func (e *Engine) Meter() *level.Meter { return e.meter }

// RunMeter ticks the meter at its configured rate until ctx is done.
func (e *Engine) RunMeter(ctx context.Context, onTick func()) error {
	return e.meter.Run(ctx, onTick)
}

// Format returns the prepared stream format, or the zero value.
func (e *Engine) Format() core.ProcessorConfig { return e.format }

// SampleRate returns the prepared sample rate, or 0.
func (e *Engine) SampleRate() float64 { return e.format.SampleRate }

// MaxBlockSize returns the prepared maximum block size, or 0.
func (e *Engine) MaxBlockSize() int { return e.format.BlockSize }

// Prepared reports whether Prepare has succeeded.
func (e *Engine) Prepared() bool { return e.prepared }

// Bank returns the main-channel high-pass bank.
func (e *Engine) Bank() *crossover.Bank { return e.bank }

// LowpassSum returns the summing low-pass.
func (e *Engine) LowpassSum() *crossover.LowpassSum { return e.sum }

// LFE returns the LFE path.
func (e *Engine) LFE() *lfe.Path { return e.lfe }

func side(isInput bool) level.Side {
	if isInput {
		return level.Input
	}
	return level.Output
}
