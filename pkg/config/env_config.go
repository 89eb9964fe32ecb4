// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnvOverrides
const (
	EnvWorldWidth        = "ARCADE_WORLD_WIDTH"
	EnvWorldHeight       = "ARCADE_WORLD_HEIGHT"
	EnvSpatialMaxObjects = "ARCADE_SPATIAL_MAX_OBJECTS"
	EnvSpatialMaxLevels  = "ARCADE_SPATIAL_MAX_LEVELS"
	EnvTimeStep          = "ARCADE_TIME_STEP"
	EnvMaxDeltaTime      = "ARCADE_MAX_DELTA_TIME"
)

// LoadConfigFromEnv returns the default configuration with any ARCADE_*
// environment overrides applied and validated.
func LoadConfigFromEnv() (*EngineConfig, error) {
	config := DefaultConfig()
	if err := ApplyEnvOverrides(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnvOverrides overwrites config fields from ARCADE_* environment
// variables. Unset variables leave the corresponding field untouched;
// set but unparsable variables are reported as errors rather than
// silently ignored.
func ApplyEnvOverrides(config *EngineConfig) error {
	if err := getEnvFloat(EnvWorldWidth, &config.WorldBounds.Width); err != nil {
		return err
	}
	if err := getEnvFloat(EnvWorldHeight, &config.WorldBounds.Height); err != nil {
		return err
	}
	if err := getEnvInt(EnvSpatialMaxObjects, &config.Spatial.MaxObjects); err != nil {
		return err
	}
	if err := getEnvInt(EnvSpatialMaxLevels, &config.Spatial.MaxLevels); err != nil {
		return err
	}
	if err := getEnvFloat(EnvTimeStep, &config.TimeStep); err != nil {
		return err
	}
	if err := getEnvFloat(EnvMaxDeltaTime, &config.MaxDeltaTime); err != nil {
		return err
	}
	return nil
}

func getEnvFloat(key string, dst *float64) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q: %w", key, value, err)
	}
	*dst = parsed
	return nil
}

func getEnvInt(key string, dst *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q: %w", key, value, err)
	}
	*dst = parsed
	return nil
}
