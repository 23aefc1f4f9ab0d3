// Package config provides configuration loading and access for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Particles ParticlesConfig `yaml:"particles"`
	Agent     AgentConfig     `yaml:"agent"`
	Field     FieldConfig     `yaml:"field"`
	Placement PlacementConfig `yaml:"placement"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// PhysicsConfig holds tick and boundary parameters.
type PhysicsConfig struct {
	DT           float64 `yaml:"dt"`             // seconds per tick
	Restitution  float64 `yaml:"restitution"`    // wall bounce energy retention
	Broadphase   bool    `yaml:"broadphase"`     // use the spatial grid for the overlap scan
	GridCellSize float64 `yaml:"grid_cell_size"` // broad-phase cell size; must be >= largest diameter
}

// ParticlesConfig holds the initial particle population parameters.
// Radii, when non-empty, gives a per-particle radius and must have
// exactly Count entries; otherwise every particle uses Radius.
type ParticlesConfig struct {
	Count  int       `yaml:"count"`
	Radius float64   `yaml:"radius"`
	Radii  []float64 `yaml:"radii"`
}

// AgentConfig holds the distinguished agent's initial state and policy
// parameters.
type AgentConfig struct {
	Enabled bool    `yaml:"enabled"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	VX      float64 `yaml:"vx"`
	VY      float64 `yaml:"vy"`
	Radius  float64 `yaml:"radius"`

	Resource    float64 `yaml:"resource"`
	Temperature float64 `yaml:"temperature"`
	SetPoint    float64 `yaml:"set_point"`
	Margin      float64 `yaml:"margin"`
	Boost       float64 `yaml:"boost"`
	MoveCost    float64 `yaml:"move_cost"`

	MinTemperature float64 `yaml:"min_temperature"`
	MaxTemperature float64 `yaml:"max_temperature"`
}

// FieldConfig selects and parameterizes the external field.
type FieldConfig struct {
	Kind        string  `yaml:"kind"` // none | scalar | vector | simplex
	GridSize    int     `yaml:"grid_size"`
	LengthScale float64 `yaml:"length_scale"`
	Variance    float64 `yaml:"variance"`
	Modes       int     `yaml:"modes"`
}

// PlacementConfig bounds the rejection-sampling retries during initial
// placement.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults, and validates the result. If path is empty, only embedded
// defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields
		// present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration errors before any simulation advances.
func (c *Config) Validate() error {
	if c.Physics.DT <= 0 {
		return fmt.Errorf("config: dt must be positive, got %g", c.Physics.DT)
	}
	if c.Physics.Restitution <= 0 || c.Physics.Restitution > 1 {
		return fmt.Errorf("config: restitution must be in (0,1], got %g", c.Physics.Restitution)
	}
	if c.Particles.Count < 0 {
		return fmt.Errorf("config: particle count must be non-negative, got %d", c.Particles.Count)
	}
	if len(c.Particles.Radii) > 0 {
		if len(c.Particles.Radii) != c.Particles.Count {
			return fmt.Errorf("config: %d radii given for %d particles", len(c.Particles.Radii), c.Particles.Count)
		}
		for i, r := range c.Particles.Radii {
			if r <= 0 {
				return fmt.Errorf("config: radius %d must be positive, got %g", i, r)
			}
		}
	} else if c.Particles.Count > 0 && c.Particles.Radius <= 0 {
		return fmt.Errorf("config: particle radius must be positive, got %g", c.Particles.Radius)
	}
	if c.Agent.Enabled {
		if c.Agent.Radius <= 0 {
			return fmt.Errorf("config: agent radius must be positive, got %g", c.Agent.Radius)
		}
		if c.Agent.MinTemperature >= c.Agent.MaxTemperature {
			return fmt.Errorf("config: survivable temperature band [%g, %g] is empty",
				c.Agent.MinTemperature, c.Agent.MaxTemperature)
		}
	}
	switch c.Field.Kind {
	case "", "none", "scalar", "vector", "simplex":
	default:
		return fmt.Errorf("config: unknown field kind %q", c.Field.Kind)
	}
	if c.Placement.MaxAttempts <= 0 {
		return fmt.Errorf("config: placement max_attempts must be positive, got %d", c.Placement.MaxAttempts)
	}
	return nil
}

// MaxRadius returns the largest configured radius, agent included.
func (c *Config) MaxRadius() float64 {
	max := c.Particles.Radius
	for _, r := range c.Particles.Radii {
		if r > max {
			max = r
		}
	}
	if c.Agent.Enabled && c.Agent.Radius > max {
		max = c.Agent.Radius
	}
	return max
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
