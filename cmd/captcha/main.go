// captcha is a terminal rendition of the Spooky Captcha, a reflex game used
// as a human-verification challenge.
//
// Usage:
//
//	captcha play        - Take the captcha interactively
//	captcha simulate    - Run the captcha headless with an autopilot
//	captcha assets      - List the loaded sprite manifest
//
// Global flags:
//
//	--fps <rate>         - Frame rate (default: runtime.tick_rate from config)
//	--seed <value>       - RNG seed for reproducible obstacles (0 = time based)
//	--config <path>      - Path to a config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination for play (default: ~/.spooky-captcha/captcha.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "captcha",
	Short: "Spooky Captcha - prove you are human by dodging pipes",
	Long: `Spooky Captcha is a side-scrolling reflex challenge for the terminal.
Steer through the gaps of five obstacles to pass.

Available commands:
  play      - Take the captcha
  simulate  - Run headless with an autopilot or a fixed jump interval
  assets    - Show the sprite manifest

Examples:
  captcha play
  captcha play --seed 42 --log-level debug
  captcha simulate --seed 7
  captcha simulate --jump-every 20 --max-cycles 5000
  captcha assets --manifest ./sprites.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = runtime.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, then time based)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(assetsCmd)
}
