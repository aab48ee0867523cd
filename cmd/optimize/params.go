// Package main tunes the garden's feel with CMA-ES: it searches seed and
// ripple parameters for a target bloom rate under a scripted player.
package main

import (
	"github.com/pthm-cable/aura/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "seed_damping", Path: "seeds.damping", Min: 0.9, Max: 0.995, Default: 0.98},
			{Name: "seed_impulse", Path: "seeds.impulse", Min: 0.2, Max: 3.0, Default: 0.5},
			{Name: "seed_initial_speed", Path: "seeds.initial_speed", Min: 0.05, Max: 2.0, Default: 0.2},
			{Name: "hit_band", Path: "hits.band", Min: 4, Max: 20, Default: 10},
			{Name: "ripple_speed", Path: "ripples.normal.speed", Min: 0.8, Max: 4.0, Default: 1.8},
			{Name: "ripple_max_radius", Path: "ripples.normal.max_radius", Min: 100, Max: 320, Default: 180},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = max(spec.Min, min(spec.Max, v[i]))
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct and recomputes
// derived values. Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) error {
	clamped := pv.Clamp(values)

	cfg.Seeds.Damping = clamped[0]
	cfg.Seeds.Impulse = clamped[1]
	cfg.Seeds.InitialSpeed = clamped[2]
	cfg.Hits.Band = clamped[3]
	cfg.Ripples.Normal.Speed = clamped[4]
	cfg.Ripples.Normal.MaxRadius = clamped[5]

	return cfg.Refresh()
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Seeds.Damping,
		cfg.Seeds.Impulse,
		cfg.Seeds.InitialSpeed,
		cfg.Hits.Band,
		cfg.Ripples.Normal.Speed,
		cfg.Ripples.Normal.MaxRadius,
	}
}
