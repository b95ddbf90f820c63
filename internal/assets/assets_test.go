package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/spooky-captcha/internal/core"
)

func TestDefaultSetHasRequiredImages(t *testing.T) {
	s := Default()

	for _, name := range Required {
		img := s.Get(name)
		assert.True(t, img.Loaded(), "image %q should be loaded", name)
		assert.Positive(t, img.Width, name)
		assert.Positive(t, img.Height, name)
	}

	player := s.Get(Player)
	assert.Equal(t, 40.0, player.Width)
	assert.Equal(t, 40.0, player.Height)
	assert.Equal(t, core.ColorOrange, s.Get(PipeTop).Color)
}

func TestGetMissingReturnsZeroImage(t *testing.T) {
	img := Default().Get("ghost")
	assert.False(t, img.Loaded())

	var nilSet *Set
	assert.False(t, nilSet.Get(Player).Loaded())
}

func TestParseReportsEveryMissingImage(t *testing.T) {
	data := []byte(`
images:
  player: {glyph: "@", color: white, width: 40, height: 40}
`)
	_, err := Parse(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAsset)
	assert.Contains(t, err.Error(), `"pipe_top"`)
	assert.Contains(t, err.Error(), `"pipe_bottom"`)
	assert.Contains(t, err.Error(), `"background"`)
}

func TestParseRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"zero height", `{glyph: "█", color: orange, width: 50, height: 0}`},
		{"long glyph", `{glyph: "##", color: orange, width: 50, height: 600}`},
		{"unknown color", `{glyph: "█", color: teal, width: 50, height: 600}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := []byte(`
images:
  player: {glyph: "@", color: white, width: 40, height: 40}
  pipe_bottom: {glyph: "█", color: orange, width: 50, height: 600}
  background: {glyph: " ", color: default, width: 800, height: 600}
  pipe_top: ` + tc.spec + "\n")
			_, err := Parse(data)
			assert.ErrorIs(t, err, ErrInvalidAsset)
		})
	}
}

func TestLoadCustomManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	data := []byte(`
images:
  player: {glyph: "G", color: lime, width: 40, height: 40}
  pipe_top: {glyph: "#", color: gray, width: 50, height: 320}
  pipe_bottom: {glyph: "#", color: gray, width: 50, height: 320}
  background: {glyph: " ", color: black, width: 800, height: 600}
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 'G', s.Get(Player).Glyph)
	assert.Equal(t, 320.0, s.Get(PipeTop).Height)
	assert.Equal(t, []string{Background, PipeBottom, PipeTop, Player}, s.Names())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
