// pkg/config/config.go
// Package config loads and validates the engine's configuration from
// JSON or YAML files and from ARCADE_* environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-arcade/pkg/physics"
)

// RectConfig describes an axis-aligned region in config files
type RectConfig struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Rect converts the config region to a physics.Rect
func (r RectConfig) Rect() physics.Rect {
	return physics.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// SpatialConfig tunes the quadtree broad-phase
type SpatialConfig struct {
	// MaxObjects is the per-node capacity before subdivision
	MaxObjects int `json:"maxObjects" yaml:"maxObjects"`
	// MaxLevels is the maximum subdivision depth
	MaxLevels int `json:"maxLevels" yaml:"maxLevels"`
}

// EngineConfig contains configuration for one engine instance
type EngineConfig struct {
	WorldBounds RectConfig    `json:"worldBounds" yaml:"worldBounds"`
	Spatial     SpatialConfig `json:"spatial" yaml:"spatial"`
	// TimeStep is the nominal seconds per simulation tick
	TimeStep float64 `json:"timeStep" yaml:"timeStep"`
	// MaxDeltaTime caps a single tick's delta to keep integration
	// stable after stalls
	MaxDeltaTime float64 `json:"maxDeltaTime" yaml:"maxDeltaTime"`
}

// DefaultConfig returns a default engine configuration
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		WorldBounds: RectConfig{X: 0, Y: 0, Width: 10000, Height: 10000},
		Spatial: SpatialConfig{
			MaxObjects: 10,
			MaxLevels:  5,
		},
		TimeStep:     1.0 / 60.0,
		MaxDeltaTime: 0.1,
	}
}

// LoadConfig loads a configuration file, choosing the codec by file
// extension: .yaml/.yml parse as YAML, everything else as JSON.
func LoadConfig(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves a configuration to a file, choosing the codec the
// same way LoadConfig does.
func SaveConfig(config *EngineConfig, path string) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration invariants
func (c *EngineConfig) Validate() error {
	if c.WorldBounds.Width <= 0 || c.WorldBounds.Height <= 0 {
		return fmt.Errorf("world bounds must have positive extents, got %gx%g",
			c.WorldBounds.Width, c.WorldBounds.Height)
	}
	if c.Spatial.MaxObjects <= 0 {
		return fmt.Errorf("spatial maxObjects must be positive, got %d", c.Spatial.MaxObjects)
	}
	if c.Spatial.MaxLevels <= 0 {
		return fmt.Errorf("spatial maxLevels must be positive, got %d", c.Spatial.MaxLevels)
	}
	if c.TimeStep <= 0 {
		return fmt.Errorf("timeStep must be positive, got %g", c.TimeStep)
	}
	if c.MaxDeltaTime < c.TimeStep {
		return fmt.Errorf("maxDeltaTime %g must not be smaller than timeStep %g",
			c.MaxDeltaTime, c.TimeStep)
	}
	return nil
}
