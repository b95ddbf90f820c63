package config

import (
	_ "embed"
)

//go:embed defaults/captcha.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Runtime: RuntimeConfig{
			TickRate: 60,
			Seed:     0,
		},
		Obstacles: ObstaclesConfig{
			EvictPassed: true,
		},
		Assets: AssetsConfig{
			Manifest: "",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.spooky-captcha/captcha.log",
		},
	}
}
