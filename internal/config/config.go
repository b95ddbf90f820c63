// Package config provides YAML-based configuration loading for the captcha
// platform: frame rate, seeding, obstacle housekeeping, sprites and logging.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the root configuration document.
type Config struct {
	Runtime   RuntimeConfig   `yaml:"runtime"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Assets    AssetsConfig    `yaml:"assets"`
	Log       LogConfig       `yaml:"log"`
}

// RuntimeConfig controls the frame driver.
type RuntimeConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"`
}

// ObstaclesConfig controls obstacle bookkeeping.
type ObstaclesConfig struct {
	// EvictPassed removes scored obstacles once they are fully off the
	// surface. Disable to keep every obstacle for the whole attempt.
	EvictPassed bool `yaml:"evict_passed"`
}

// AssetsConfig points at the sprite manifest.
type AssetsConfig struct {
	Manifest string `yaml:"manifest"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks the configuration for values the platform cannot run with.
func (c Config) Validate() error {
	if c.Runtime.TickRate <= 0 {
		return fmt.Errorf("%w: runtime.tick_rate must be positive, got %d", ErrInvalidConfig, c.Runtime.TickRate)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q: %v", ErrInvalidConfig, c.Log.Level, err)
	}
	return nil
}
