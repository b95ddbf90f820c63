// Package assets provides the named sprites the captcha scene draws.
// Sprites are described by a YAML manifest; the embedded default can be
// replaced with a custom file.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/spooky-captcha/internal/core"
)

// Names of the images the scene requires.
const (
	Player     = "player"
	PipeTop    = "pipe_top"
	PipeBottom = "pipe_bottom"
	Background = "background"
)

// Required lists every image a manifest must provide.
var Required = []string{Player, PipeTop, PipeBottom, Background}

var (
	// ErrMissingAsset is returned when a required image is absent from the manifest.
	ErrMissingAsset = errors.New("assets: missing image")
	// ErrInvalidAsset is returned when an image entry cannot be used for layout.
	ErrInvalidAsset = errors.New("assets: invalid image")
)

//go:embed defaults/sprites.yaml
var defaultManifest []byte

// Image is a loaded sprite. Width and Height are its natural size in
// surface units and take part in layout math.
type Image struct {
	Name   string
	Glyph  rune
	Color  core.Color
	Width  float64
	Height float64
}

// Loaded reports whether the image came from a manifest entry.
func (img Image) Loaded() bool {
	return img.Name != ""
}

type manifest struct {
	Images map[string]imageSpec `yaml:"images"`
}

type imageSpec struct {
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Set holds the loaded images by name.
type Set struct {
	images map[string]Image
}

// Get returns the named image. A missing image yields the zero Image,
// which draws nothing.
func (s *Set) Get(name string) Image {
	if s == nil {
		return Image{}
	}
	return s.images[name]
}

// Names returns the loaded image names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.images))
	for name := range s.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the embedded sprite set.
func Default() *Set {
	s, err := Parse(defaultManifest)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded manifest is invalid: %v", err))
	}
	return s
}

// Load reads a manifest from path, or the embedded default when path is empty.
func Load(path string) (*Set, error) {
	if path == "" {
		return Parse(defaultManifest)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to read manifest %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("assets: manifest %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a manifest and checks that every required image is usable.
// All problems are reported together.
func Parse(data []byte) (*Set, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: failed to parse manifest: %w", err)
	}

	s := &Set{images: make(map[string]Image, len(m.Images))}
	var errs []error

	for name, spec := range m.Images {
		img, err := spec.image(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.images[name] = img
	}

	for _, name := range Required {
		if _, ok := m.Images[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingAsset, name))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

func (spec imageSpec) image(name string) (Image, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return Image{}, fmt.Errorf("%w: %q has non-positive size %gx%g", ErrInvalidAsset, name, spec.Width, spec.Height)
	}
	if utf8.RuneCountInString(spec.Glyph) != 1 {
		return Image{}, fmt.Errorf("%w: %q glyph must be a single character, got %q", ErrInvalidAsset, name, spec.Glyph)
	}
	c, ok := ParseColor(spec.Color)
	if !ok {
		return Image{}, fmt.Errorf("%w: %q has unknown color %q", ErrInvalidAsset, name, spec.Color)
	}
	r, _ := utf8.DecodeRuneInString(spec.Glyph)
	return Image{
		Name:   name,
		Glyph:  r,
		Color:  c,
		Width:  spec.Width,
		Height: spec.Height,
	}, nil
}

var colorNames = map[string]core.Color{
	"":          core.ColorDefault,
	"default":   core.ColorDefault,
	"black":     core.ColorBlack,
	"red":       core.ColorRed,
	"green":     core.ColorGreen,
	"yellow":    core.ColorYellow,
	"white":     core.ColorWhite,
	"lime":      core.ColorBrightGreen,
	"bright":    core.ColorBrightWhite,
	"orange":    core.ColorOrange,
	"purple":    core.ColorPurple,
	"gray":      core.ColorGray,
	"dark-gray": core.ColorDarkGray,
}

// ParseColor maps a manifest color name to a palette color.
func ParseColor(name string) (core.Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
