// Package config holds application constants and the yaml config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Every field has a working
// default; a missing file is not an error.
type Config struct {
	Timer    TimerConfig    `yaml:"timer"`
	Theme    string         `yaml:"theme"`
	Database DatabaseConfig `yaml:"database"`
}

// TimerConfig is the duration loaded into the engine at startup.
type TimerConfig struct {
	Hours   int `yaml:"hours"`
	Minutes int `yaml:"minutes"`
	Seconds int `yaml:"seconds"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // empty means <data-dir>/sessions.db
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timer: TimerConfig{
			Hours:   DefaultHours,
			Minutes: DefaultMinutes,
			Seconds: DefaultSeconds,
		},
		Theme: "default",
	}
}

// Load reads the config file at path. A missing file yields the
// defaults; a file that exists but does not parse is an error so a
// typo never silently reverts the user's settings.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
