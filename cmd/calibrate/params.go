// Package main provides CMA-ES calibration for agent policy parameters
// that maximize survival time.
package main

import (
	"github.com/achristensen56/principlesofsystemsneuro/config"
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
// Initial vitals and the survivable band are locked; only the policy
// knobs move.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "margin", Path: "agent.margin", Min: 0.1, Max: 10.0, Default: 2.0},
			{Name: "boost", Path: "agent.boost", Min: 0.0, Max: 2.0, Default: 0.5},
			{Name: "move_cost", Path: "agent.move_cost", Min: 0.0, Max: 5.0, Default: 0.0},
			{Name: "set_point", Path: "agent.set_point", Min: 90.0, Max: 102.0, Default: 98.0},
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
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Agent.Margin = clamped[0]
	cfg.Agent.Boost = clamped[1]
	cfg.Agent.MoveCost = clamped[2]
	cfg.Agent.SetPoint = clamped[3]
}

// ExtractFromConfig extracts current parameter values from a Config
// struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Agent.Margin,
		cfg.Agent.Boost,
		cfg.Agent.MoveCost,
		cfg.Agent.SetPoint,
	}
}
