package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spooky-captcha/internal/assets"
	"github.com/vovakirdan/spooky-captcha/internal/config"
	"github.com/vovakirdan/spooky-captcha/internal/core"
	"github.com/vovakirdan/spooky-captcha/internal/games/captcha"
)

// loadConfig reads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS != 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Runtime.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, cfg.Validate()
}

// runtimeConfig builds the game's runtime config for a screen size.
func runtimeConfig(cfg config.Config, width, height int) core.RuntimeConfig {
	seed := cfg.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Runtime.TickRate,
		Seed:     seed,
	}
}

// newGame loads the configured sprites and creates a game.
func newGame(cfg config.Config) (*captcha.Game, error) {
	set, err := assets.Load(config.ExpandHome(cfg.Assets.Manifest))
	if err != nil {
		return nil, err
	}
	return captcha.New(captcha.Options{
		EvictPassed: cfg.Obstacles.EvictPassed,
		Assets:      set,
	}), nil
}

// newLogger creates a structured logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "captcha",
		Level:           lvl,
	}), nil
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log: failed to create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log: failed to open %s: %w", path, err)
	}
	return f, nil
}
