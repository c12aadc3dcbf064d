package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-bassmgr/dsp/bass"
)

// preset is the YAML form of bass.Parameters. Missing keys keep their
// previous value.
type preset struct {
	CrossoverHz *float64 `yaml:"crossover_hz"`
	LFECutoffHz *float64 `yaml:"lfe_cutoff_hz"`
	LFEBoost    *bool    `yaml:"lfe_boost"`
}

func loadPreset(path string, base bass.Parameters) (bass.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("preset: %w", err)
	}
	return parsePreset(data, base)
}

func parsePreset(data []byte, base bass.Parameters) (bass.Parameters, error) {
	var p preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return base, fmt.Errorf("preset: %w", err)
	}

	out := base
	if p.CrossoverHz != nil {
		out.CrossoverHz = *p.CrossoverHz
	}
	if p.LFECutoffHz != nil {
		out.LFECutoffHz = *p.LFECutoffHz
	}
	if p.LFEBoost != nil {
		out.LFEBoost = *p.LFEBoost
	}

	if err := out.Validate(); err != nil {
		return base, fmt.Errorf("preset: %w", err)
	}
	return out, nil
}

func marshalPreset(p bass.Parameters) ([]byte, error) {
	return yaml.Marshal(preset{
		CrossoverHz: &p.CrossoverHz,
		LFECutoffHz: &p.LFECutoffHz,
		LFEBoost:    &p.LFEBoost,
	})
}
