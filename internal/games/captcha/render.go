package captcha

import (
	"fmt"

	"github.com/vovakirdan/spooky-captcha/internal/assets"
	"github.com/vovakirdan/spooky-captcha/internal/core"
)

// Align selects how FillText positions text relative to x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Surface is the 2D drawing target. Coordinates are game units in the
// SurfaceWidth x SurfaceHeight space; the implementation scales and clips.
type Surface interface {
	DrawImage(img assets.Image, dst core.RectF)
	FillRect(dst core.RectF, fill rune, c core.Color)
	FillText(text string, x, y float64, align Align, c core.Color)
}

// HUD layout
const (
	barX      = 10.0
	barY      = 40.0
	barWidth  = 780.0
	barHeight = 20.0
)

// Visual characters for rendering
const (
	PanelChar   = '░'
	BarTrackCh  = '─'
	BarFillChar = '█'
)

// Messages shown on the surface.
const (
	MsgJumpHint  = "Press Space to Jump"
	MsgGoalHint  = "Score at least 5 to pass this captcha!"
	MsgFailed    = "Hmm, you might be a robot...Press 'r' to try again!"
	MsgPassed    = "Congrats, You passed the Captcha!"
	countdownFmt = "Countdown: %d"
	scoreFmt     = "Score: %d"
)

// Render paints the current frame. It reads state only.
func (g *Game) Render(dst Surface) {
	s := &g.state
	g.drawBackground(dst)

	if s.Phase.ShowsInstructions() {
		g.drawInstructions(dst)
		return
	}

	g.drawScoreBoard(dst)
	g.drawProgressBar(dst)

	switch s.Phase {
	case PhaseActive:
		g.drawPlayer(dst)
		g.drawObstacles(dst)
	case PhasePassed:
		g.drawPassed(dst)
	case PhaseFailed:
		g.drawFailed(dst)
	}
}

func (g *Game) drawBackground(dst Surface) {
	dst.DrawImage(g.opts.Assets.Get(assets.Background), core.NewRectF(0, 0, g.surfaceW, g.surfaceH))
}

// drawPanel draws the translucent message panel across the middle.
func (g *Game) drawPanel(dst Surface) {
	dst.FillRect(core.NewRectF(50, g.surfaceH/2-100, g.surfaceW-100, 200), PanelChar, core.ColorDarkGray)
}

func (g *Game) drawInstructions(dst Surface) {
	cx, cy := g.surfaceW/2, g.surfaceH/2
	g.drawPanel(dst)
	dst.FillText(MsgJumpHint, cx, cy-20, AlignCenter, core.ColorBrightWhite)
	dst.FillText(MsgGoalHint, cx, cy+20, AlignCenter, core.ColorBrightWhite)
	dst.FillText(fmt.Sprintf(countdownFmt, g.state.Countdown), cx, cy+60, AlignCenter, core.ColorYellow)
}

func (g *Game) drawScoreBoard(dst Surface) {
	dst.FillText(fmt.Sprintf(scoreFmt, g.state.Score), 10, 30, AlignLeft, core.ColorBrightWhite)
}

// drawProgressBar fills the track proportionally to score/PassThreshold.
func (g *Game) drawProgressBar(dst Surface) {
	dst.FillRect(core.NewRectF(barX, barY, barWidth, barHeight), BarTrackCh, core.ColorGray)

	progress := core.ClampF(float64(g.state.Score)/PassThreshold*barWidth, 0, barWidth)
	if progress > 0 {
		dst.FillRect(core.NewRectF(barX, barY, progress, barHeight), BarFillChar, core.ColorGreen)
	}
}

func (g *Game) drawPlayer(dst Surface) {
	dst.DrawImage(g.opts.Assets.Get(assets.Player), g.state.Player.Rect())
}

// drawObstacles anchors the top sprite so that it ends at the gap top and
// starts the bottom sprite at the gap bottom, both at natural size.
func (g *Game) drawObstacles(dst Surface) {
	top := g.opts.Assets.Get(assets.PipeTop)
	bottom := g.opts.Assets.Get(assets.PipeBottom)

	for _, o := range g.state.Obstacles {
		dst.DrawImage(top, core.NewRectF(o.X, float64(o.GapTop)-top.Height, top.Width, top.Height))
		dst.DrawImage(bottom, core.NewRectF(o.X, o.GapBottom(), bottom.Width, bottom.Height))
	}
}

func (g *Game) drawFailed(dst Surface) {
	g.drawPanel(dst)
	dst.FillText(MsgFailed, g.surfaceW/2, g.surfaceH/2, AlignCenter, core.ColorBrightWhite)
}

func (g *Game) drawPassed(dst Surface) {
	dst.FillRect(core.NewRectF(0, 0, g.surfaceW, g.surfaceH), ' ', core.ColorBlack)
	for i, c := range g.state.Rain.Columns {
		if c.Glyph == 0 {
			continue
		}
		dst.FillText(string(c.Glyph), float64(i*RainColumnWidth), c.GlyphY, AlignLeft, core.ColorGreen)
	}
	dst.FillText(MsgPassed, g.surfaceW/2, g.surfaceH/2, AlignCenter, core.ColorBrightGreen)
}
