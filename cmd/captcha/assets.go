package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spooky-captcha/internal/assets"
	"github.com/vovakirdan/spooky-captcha/internal/config"
)

var flagManifest string

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the sprite manifest",
	Long: `Load the sprite manifest and list every image with its natural size.
Fails if a required image is missing or invalid.

Examples:
  captcha assets
  captcha assets --manifest ./sprites.yaml`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func init() {
	assetsCmd.Flags().StringVar(&flagManifest, "manifest", "", "Sprite manifest YAML (default from config, then embedded)")
}

func runAssets(cmd *cobra.Command, args []string) error {
	path := flagManifest
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path = cfg.Assets.Manifest
	}

	set, err := assets.Load(config.ExpandHome(path))
	if err != nil {
		return err
	}

	source := path
	if source == "" {
		source = "(embedded)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Manifest: %s\n\n", source)

	out := cmd.OutOrStdout()
	names := set.Names()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxNameLen, "Name", "Glyph", "Size")
	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxNameLen, "----", "-----", "----")
	for _, name := range names {
		img := set.Get(name)
		fmt.Fprintf(out, "  %-*s  %-5c  %gx%g\n", maxNameLen, img.Name, img.Glyph, img.Width, img.Height)
	}
	return nil
}
