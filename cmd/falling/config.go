package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	World   WorldConfig   `toml:"world"`
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
}

type WorldConfig struct {
	Capacity int     `toml:"capacity"`
	Blocks   int     `toml:"blocks"`
	MinSpeed float64 `toml:"min_speed"` // cells per second
	MaxSpeed float64 `toml:"max_speed"`
}

type DisplayConfig struct {
	FPS int `toml:"fps"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Path   string `toml:"path"`
}

// loadConfig reads the TOML config at path over the defaults. A missing file
// is not an error; the defaults stand.
func loadConfig(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		World: WorldConfig{
			Capacity: 512,
			Blocks:   256,
			MinSpeed: 4,
			MaxSpeed: 20,
		},
		Display: DisplayConfig{
			FPS: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Path:   "falling.log",
		},
	}
}
