package captcha

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/spooky-captcha/internal/assets"
	"github.com/vovakirdan/spooky-captcha/internal/core"
)

type drawCall struct {
	kind  string // "image", "rect" or "text"
	name  string // image name or text
	rect  core.RectF
	color core.Color
}

// recordingSurface captures draw calls instead of painting.
type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) DrawImage(img assets.Image, dst core.RectF) {
	r.calls = append(r.calls, drawCall{kind: "image", name: img.Name, rect: dst, color: img.Color})
}

func (r *recordingSurface) FillRect(dst core.RectF, _ rune, c core.Color) {
	r.calls = append(r.calls, drawCall{kind: "rect", rect: dst, color: c})
}

func (r *recordingSurface) FillText(text string, x, y float64, _ Align, c core.Color) {
	r.calls = append(r.calls, drawCall{kind: "text", name: text, rect: core.NewRectF(x, y, 0, 0), color: c})
}

func (r *recordingSurface) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.kind == "text" {
			out = append(out, c.name)
		}
	}
	return out
}

func (r *recordingSurface) images(name string) []core.RectF {
	var out []core.RectF
	for _, c := range r.calls {
		if c.kind == "image" && c.name == name {
			out = append(out, c.rect)
		}
	}
	return out
}

func render(g *Game) *recordingSurface {
	r := &recordingSurface{}
	g.Render(r)
	return r
}

func TestRenderInstructions(t *testing.T) {
	g := New(Options{})
	g.Reset(testConfig(1))

	r := render(g)
	require.NotEmpty(t, r.calls)
	assert.Equal(t, assets.Background, r.calls[0].name, "background is painted first")
	assert.Equal(t, []string{MsgJumpHint, MsgGoalHint, "Countdown: 3"}, r.texts())
	assert.Empty(t, r.images(assets.Player))

	g.StartCountdown()
	g.CountdownTick()
	assert.Contains(t, render(g).texts(), "Countdown: 2")
}

func TestRenderActive(t *testing.T) {
	g := newActiveGame(t, 8, true)
	g.state.Score = 2

	r := render(g)
	assert.Contains(t, r.texts(), "Score: 2")

	player := r.images(assets.Player)
	require.Len(t, player, 1)
	assert.Equal(t, g.state.Player.Rect(), player[0])

	o := g.state.Obstacles[0]
	top := r.images(assets.PipeTop)
	bottom := r.images(assets.PipeBottom)
	require.Len(t, top, 1)
	require.Len(t, bottom, 1)
	assert.Equal(t, float64(o.GapTop)-600, top[0].Y, "top sprite ends at the gap top")
	assert.Equal(t, float64(o.GapTop), top[0].Bottom())
	assert.Equal(t, o.GapBottom(), bottom[0].Y)
	assert.Equal(t, o.X, bottom[0].X)
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		score     int
		wantFill  float64
		wantRects int
	}{
		{0, 0, 1},
		{2, 312, 2},
		{5, 780, 2},
		{7, 780, 2},
	}

	for _, tc := range tests {
		g := newActiveGame(t, 1, true)
		g.state.Score = tc.score

		var bars []core.RectF
		for _, c := range render(g).calls {
			if c.kind == "rect" && c.rect.Y == barY {
				bars = append(bars, c.rect)
			}
		}
		require.Len(t, bars, tc.wantRects, "score %d", tc.score)
		assert.Equal(t, barWidth, bars[0].W)
		if tc.wantRects == 2 {
			assert.InDelta(t, tc.wantFill, bars[1].W, 1e-9, "score %d", tc.score)
		}
	}
}

func TestRenderFailed(t *testing.T) {
	g := newActiveGame(t, 1, true)
	g.state.Player.Y = 580
	g.Step(core.NewInputFrame())
	require.Equal(t, PhaseFailed, g.Phase())

	r := render(g)
	assert.Contains(t, r.texts(), MsgFailed)
	assert.Empty(t, r.images(assets.Player), "player is hidden once the attempt is over")
	assert.Empty(t, r.images(assets.PipeTop))
}

func TestRenderPassed(t *testing.T) {
	g := newActiveGame(t, 1, true)
	g.state.Phase = PhasePassed
	g.state.Score = PassThreshold

	// Before the rain has advanced there are no glyphs yet
	assert.Equal(t, []string{"Score: 5", MsgPassed}, render(g).texts())

	g.Step(core.NewInputFrame())
	texts := render(g).texts()
	assert.Equal(t, MsgPassed, texts[len(texts)-1])

	glyphs := 0
	for _, txt := range texts {
		if len(txt) == 1 && !strings.HasPrefix(txt, "Score") {
			glyphs++
		}
	}
	assert.Equal(t, 40, glyphs)
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newActiveGame(t, 3, true)
	stepHovering(g, 100)

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		render(g)
	}
	assert.Equal(t, before, g.Snapshot())
}
