package bass

import (
	"fmt"

	"github.com/cwbudde/algo-bassmgr/dsp/core"
	"github.com/cwbudde/algo-bassmgr/dsp/lfe"
	"github.com/cwbudde/algo-bassmgr/dsp/smooth"
	"github.com/cwbudde/algo-bassmgr/measure/level"
)

const (
	defaultStages             = 8
	defaultStageOrder         = 2
	defaultLinkwitzRileyOrder = 4
	maxStages                 = 64
	maxLinkwitzRileyOrder     = 16
)

// Option mutates engine construction parameters.
type Option func(*config) error

type config struct {
	rampSeconds float64
	stages      int
	stageOrder  int
	lrOrder     int
	boostDB     float64
	params      Parameters
	meterOpts   []level.MeterOption
}

func defaultConfig() config {
	return config{
		rampSeconds: smooth.DefaultRampSeconds,
		stages:      defaultStages,
		stageOrder:  defaultStageOrder,
		lrOrder:     defaultLinkwitzRileyOrder,
		boostDB:     lfe.DefaultBoostDB,
		params:      DefaultParameters(),
	}
}

// WithRampTime sets the cutoff ramp length in seconds. The ramp advances
// one step per processed block.
func WithRampTime(seconds float64) Option {
	return func(cfg *config) error {
		if seconds < 0 || !core.IsFinite(seconds) {
			return fmt.Errorf("bass: ramp time must be >= 0 and finite: %v", seconds)
		}
		cfg.rampSeconds = seconds
		return nil
	}
}

// WithStages sets the number of high-pass stages per main channel.
func WithStages(n int) Option {
	return func(cfg *config) error {
		if n <= 0 || n > maxStages {
			return fmt.Errorf("bass: stage count must be in [1, %d]: %d", maxStages, n)
		}
		cfg.stages = n
		return nil
	}
}

// WithStageOrder sets the Butterworth order of one high-pass stage (1 or 2).
func WithStageOrder(order int) Option {
	return func(cfg *config) error {
		if order != 1 && order != 2 {
			return fmt.Errorf("bass: stage order must be 1 or 2: %d", order)
		}
		cfg.stageOrder = order
		return nil
	}
}

// WithLinkwitzRileyOrder sets the order of the summing and LFE low-passes.
func WithLinkwitzRileyOrder(order int) Option {
	return func(cfg *config) error {
		if order <= 0 || order%2 != 0 || order > maxLinkwitzRileyOrder {
			return fmt.Errorf("bass: Linkwitz-Riley order must be even and in [2, %d]: %d", maxLinkwitzRileyOrder, order)
		}
		cfg.lrOrder = order
		return nil
	}
}

// WithBoostDB sets the LFE boost applied when Parameters.LFEBoost is set.
func WithBoostDB(db float64) Option {
	return func(cfg *config) error {
		if !core.IsFinite(db) {
			return fmt.Errorf("bass: boost must be finite: %v", db)
		}
		cfg.boostDB = db
		return nil
	}
}

// WithMeterDecay sets the per-tick decay of the level meter.
func WithMeterDecay(decay float64) Option {
	return func(cfg *config) error {
		if decay < 0 || decay >= 1 || !core.IsFinite(decay) {
			return fmt.Errorf("bass: meter decay must be in [0, 1): %v", decay)
		}
		cfg.meterOpts = append(cfg.meterOpts, level.WithDecay(decay))
		return nil
	}
}

// WithMeterTickRate sets the rate at which RunMeter ticks the meter.
func WithMeterTickRate(hz float64) Option {
	return func(cfg *config) error {
		if !(hz > 0 && hz <= level.MaxTickRate) {
			return fmt.Errorf("bass: meter tick rate must be in (0, %v] Hz: %v", level.MaxTickRate, hz)
		}
		cfg.meterOpts = append(cfg.meterOpts, level.WithTickRate(hz))
		return nil
	}
}

// WithParameters sets the initial parameters.
func WithParameters(p Parameters) Option {
	return func(cfg *config) error {
		if err := p.Validate(); err != nil {
			return err
		}
		cfg.params = p
		return nil
	}
}
