package level

// Defaults for MeterConfig.
const (
	DefaultDecay    = 0.95
	DefaultTickRate = 60.0
	MaxTickRate     = 1000.0
)

// MeterConfig defines configuration for the peak meter.
type MeterConfig struct {
	// Decay multiplies the readable level on every tick. Must be in [0, 1).
	Decay float64
	// TickRate is the rate in Hz at which Run calls Tick.
	TickRate float64
}

// MeterOption mutates a MeterConfig.
type MeterOption func(*MeterConfig)

// DefaultMeterConfig returns a 60 Hz meter decaying by 0.95 per tick.
func DefaultMeterConfig() MeterConfig {
	return MeterConfig{
		Decay:    DefaultDecay,
		TickRate: DefaultTickRate,
	}
}

// WithDecay sets the per-tick decay factor. Values outside [0, 1) are
// ignored.
func WithDecay(decay float64) MeterOption {
	return func(cfg *MeterConfig) {
		if decay >= 0 && decay < 1 {
			cfg.Decay = decay
		}
	}
}

// WithTickRate sets the tick rate used by Run. Values outside
// (0, MaxTickRate] are ignored.
func WithTickRate(hz float64) MeterOption {
	return func(cfg *MeterConfig) {
		if hz > 0 && hz <= MaxTickRate {
			cfg.TickRate = hz
		}
	}
}

// ApplyMeterOptions applies zero or more options to the default config.
func ApplyMeterOptions(opts ...MeterOption) MeterConfig {
	cfg := DefaultMeterConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
