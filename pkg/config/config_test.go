// pkg/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
	if cfg.WorldBounds.Width != 10000 || cfg.WorldBounds.Height != 10000 {
		t.Errorf("world bounds = %gx%g, expected 10000x10000",
			cfg.WorldBounds.Width, cfg.WorldBounds.Height)
	}
	if cfg.Spatial.MaxObjects != 10 || cfg.Spatial.MaxLevels != 5 {
		t.Errorf("spatial = %d/%d, expected 10/5", cfg.Spatial.MaxObjects, cfg.Spatial.MaxLevels)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	content := `{
		"worldBounds": {"x": 0, "y": 0, "width": 2000, "height": 1500},
		"spatial": {"maxObjects": 8, "maxLevels": 4},
		"timeStep": 0.02,
		"maxDeltaTime": 0.2
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.WorldBounds.Width != 2000 || cfg.WorldBounds.Height != 1500 {
		t.Errorf("world bounds = %gx%g, expected 2000x1500",
			cfg.WorldBounds.Width, cfg.WorldBounds.Height)
	}
	if cfg.Spatial.MaxObjects != 8 {
		t.Errorf("maxObjects = %d, expected 8", cfg.Spatial.MaxObjects)
	}
	if cfg.TimeStep != 0.02 {
		t.Errorf("timeStep = %g, expected 0.02", cfg.TimeStep)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	content := `worldBounds:
  x: 0
  y: 0
  width: 800
  height: 600
spatial:
  maxObjects: 6
  maxLevels: 3
timeStep: 0.01
maxDeltaTime: 0.1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.WorldBounds.Width != 800 || cfg.WorldBounds.Height != 600 {
		t.Errorf("world bounds = %gx%g, expected 800x600",
			cfg.WorldBounds.Width, cfg.WorldBounds.Height)
	}
	if cfg.Spatial.MaxLevels != 3 {
		t.Errorf("maxLevels = %d, expected 3", cfg.Spatial.MaxLevels)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte(`{"timeStep": 0.05, "maxDeltaTime": 0.5}`), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.TimeStep != 0.05 {
		t.Errorf("timeStep = %g, expected the file's 0.05", cfg.TimeStep)
	}
	if cfg.WorldBounds.Width != 10000 {
		t.Errorf("world width = %g, expected the default 10000", cfg.WorldBounds.Width)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed_json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("writing config file: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("invalid_values_rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.json")
		content := `{"worldBounds": {"width": -5, "height": 100}}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing config file: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected validation error for negative world width")
		}
	})
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".yaml"} {
		t.Run(strings.TrimPrefix(ext, "."), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "engine"+ext)
			original := DefaultConfig()
			original.WorldBounds.Width = 4321
			original.Spatial.MaxObjects = 7

			if err := SaveConfig(original, path); err != nil {
				t.Fatalf("SaveConfig() error = %v", err)
			}
			loaded, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if loaded.WorldBounds.Width != 4321 {
				t.Errorf("world width = %g, expected 4321", loaded.WorldBounds.Width)
			}
			if loaded.Spatial.MaxObjects != 7 {
				t.Errorf("maxObjects = %d, expected 7", loaded.Spatial.MaxObjects)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EngineConfig)
		wantErr bool
	}{
		{"defaults_valid", func(c *EngineConfig) {}, false},
		{"zero_world_width", func(c *EngineConfig) { c.WorldBounds.Width = 0 }, true},
		{"negative_world_height", func(c *EngineConfig) { c.WorldBounds.Height = -1 }, true},
		{"zero_max_objects", func(c *EngineConfig) { c.Spatial.MaxObjects = 0 }, true},
		{"zero_max_levels", func(c *EngineConfig) { c.Spatial.MaxLevels = 0 }, true},
		{"zero_time_step", func(c *EngineConfig) { c.TimeStep = 0 }, true},
		{"max_delta_below_time_step", func(c *EngineConfig) {
			c.TimeStep = 0.1
			c.MaxDeltaTime = 0.05
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Run("overrides_applied", func(t *testing.T) {
		t.Setenv(EnvWorldWidth, "3000")
		t.Setenv(EnvSpatialMaxObjects, "15")
		t.Setenv(EnvTimeStep, "0.025")

		cfg, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() error = %v", err)
		}
		if cfg.WorldBounds.Width != 3000 {
			t.Errorf("world width = %g, expected 3000", cfg.WorldBounds.Width)
		}
		if cfg.Spatial.MaxObjects != 15 {
			t.Errorf("maxObjects = %d, expected 15", cfg.Spatial.MaxObjects)
		}
		if cfg.TimeStep != 0.025 {
			t.Errorf("timeStep = %g, expected 0.025", cfg.TimeStep)
		}
		// Untouched fields keep their defaults
		if cfg.WorldBounds.Height != 10000 {
			t.Errorf("world height = %g, expected the default 10000", cfg.WorldBounds.Height)
		}
	})

	t.Run("unparsable_value_is_an_error", func(t *testing.T) {
		t.Setenv(EnvWorldWidth, "not-a-number")
		if _, err := LoadConfigFromEnv(); err == nil {
			t.Error("expected error for unparsable override")
		}
	})

	t.Run("invalid_override_fails_validation", func(t *testing.T) {
		t.Setenv(EnvSpatialMaxLevels, "-3")
		if _, err := LoadConfigFromEnv(); err == nil {
			t.Error("expected validation error for negative maxLevels")
		}
	})
}
