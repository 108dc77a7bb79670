package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"habitgrid/internal/constants"
)

// Config is the top-level application configuration.
type Config struct {
	// StoragePath is where the state blob lives. A ".json" extension selects
	// the JSON store; anything else selects SQLite.
	StoragePath string `yaml:"storage_path"`

	// GridStepMin is the minute granularity for auto-placed blocks.
	GridStepMin int `yaml:"grid_step_min"`

	// DefaultHabits seed the store on first run.
	DefaultHabits []string `yaml:"default_habits"`

	// Debug enables verbose logging to stderr.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		StoragePath:   filepath.Join(DefaultDir(), "habitgrid.json"),
		GridStepMin:   constants.GridStepMin,
		DefaultHabits: append([]string(nil), constants.DefaultHabitNames...),
	}
}

// DefaultDir returns the configuration directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", constants.AppName)
}

// Load reads the YAML config at path. A missing file creates one with
// defaults; a malformed file falls back to defaults without failing, since
// configuration is never a fatal concern for a local tool.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if saveErr := Save(path, cfg); saveErr != nil {
			return cfg, saveErr
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), nil
	}
	if cfg.StoragePath == "" {
		cfg.StoragePath = DefaultConfig().StoragePath
	}
	if cfg.GridStepMin <= 0 {
		cfg.GridStepMin = constants.GridStepMin
	}
	if len(cfg.DefaultHabits) == 0 {
		cfg.DefaultHabits = append([]string(nil), constants.DefaultHabitNames...)
	}
	return cfg, nil
}

// Save writes the config as YAML with restrictive permissions.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
