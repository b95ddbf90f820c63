package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spooky-captcha/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take the captcha",
	Long: `Start the captcha in the terminal.

Controls:
  Space/Up   - Jump
  R          - Try again (after failing)
  Q/Ctrl+C   - Quit

The attempt starts with a three second countdown. Score 5 to pass.
Logs are written to --log-file since the game owns the terminal.

Examples:
  captcha play
  captcha play --seed 42
  captcha play --config ./my-captcha.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, cfg.Log.Level)
	if err != nil {
		return err
	}

	game, err := newGame(cfg)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := runtimeConfig(cfg, width, height)
	logger.Debug("starting", "seed", rc.Seed, "fps", rc.TickRate, "width", width, "height", height)

	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
