package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spooky-captcha/internal/games/captcha"
)

var (
	flagJumpEvery int
	flagMaxCycles int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the captcha headless",
	Long: `Play one attempt without a display and print the outcome.

By default an autopilot steers for the centre of each gap. With
--jump-every N the player jumps on every Nth cycle instead.
The countdown is emulated at --fps cycles per second.
Logs go to stderr.

Examples:
  captcha simulate --seed 7
  captcha simulate --jump-every 20 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Jump every N cycles instead of using the autopilot")
	simulateCmd.Flags().IntVar(&flagMaxCycles, "max-cycles", 20000, "Stop after this many cycles")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagMaxCycles <= 0 {
		return fmt.Errorf("--max-cycles must be positive, got %d", flagMaxCycles)
	}

	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	game, err := newGame(cfg)
	if err != nil {
		return err
	}

	var pilot captcha.Pilot = captcha.Autopilot{}
	if flagJumpEvery > 0 {
		pilot = captcha.IntervalPilot{Every: flagJumpEvery}
	}

	rc := runtimeConfig(cfg, 80, 24)
	logger.Info("simulation started", "seed", rc.Seed, "fps", rc.TickRate, "pilot", fmt.Sprintf("%T", pilot))

	out := captcha.Simulate(game, rc, pilot, flagMaxCycles, func(t captcha.Transition) {
		logger.Debug("phase changed", "from", t.From, "to", t.To, "score", t.Score, "cycle", t.Cycle)
	})

	logger.Info("simulation finished", "phase", out.Phase, "score", out.Score, "cycles", out.Cycles)

	fmt.Fprintf(cmd.OutOrStdout(), "%s (simulated)\n", game.Title())
	fmt.Fprintf(cmd.OutOrStdout(), "seed:     %d\n", rc.Seed)
	fmt.Fprintf(cmd.OutOrStdout(), "outcome:  %s\n", out.Phase)
	fmt.Fprintf(cmd.OutOrStdout(), "score:    %d/%d\n", out.Score, captcha.PassThreshold)
	fmt.Fprintf(cmd.OutOrStdout(), "cycles:   %d\n", out.Cycles)
	fmt.Fprintf(cmd.OutOrStdout(), "spawned:  %d\n", out.Spawned)
	return nil
}
