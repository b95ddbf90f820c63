package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/spooky-captcha/internal/assets"
	"github.com/vovakirdan/spooky-captcha/internal/core"
	"github.com/vovakirdan/spooky-captcha/internal/games/captcha"
)

// CellSurface paints the game's unit space onto a terminal cell buffer,
// scaling each axis independently and clipping at the edges.
type CellSurface struct {
	screen *core.Screen
	unitsW float64
	unitsH float64
}

// NewCellSurface maps a unitsW x unitsH space onto screen.
func NewCellSurface(screen *core.Screen, unitsW, unitsH float64) *CellSurface {
	return &CellSurface{screen: screen, unitsW: unitsW, unitsH: unitsH}
}

var _ captcha.Surface = (*CellSurface)(nil)

func (s *CellSurface) scale() (sx, sy float64) {
	return float64(s.screen.Width()) / s.unitsW, float64(s.screen.Height()) / s.unitsH
}

// cellRect converts a unit rectangle to cells. Non-empty rectangles cover
// at least one cell on each axis.
func (s *CellSurface) cellRect(r core.RectF) core.Rect {
	sx, sy := s.scale()
	x0 := int(math.Round(r.X * sx))
	y0 := int(math.Round(r.Y * sy))
	x1 := int(math.Round(r.Right() * sx))
	y1 := int(math.Round(r.Bottom() * sy))
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawImage fills the destination with the sprite's glyph. Unloaded images
// draw nothing.
func (s *CellSurface) DrawImage(img assets.Image, dst core.RectF) {
	if !img.Loaded() {
		return
	}
	s.screen.DrawRect(s.cellRect(dst), img.Glyph, img.Color)
}

// FillRect fills the destination with a rune.
func (s *CellSurface) FillRect(dst core.RectF, fill rune, c core.Color) {
	if dst.W <= 0 || dst.H <= 0 {
		return
	}
	s.screen.DrawRect(s.cellRect(dst), fill, c)
}

// FillText writes text on the row containing y.
func (s *CellSurface) FillText(text string, x, y float64, align captcha.Align, c core.Color) {
	sx, sy := s.scale()
	col := int(math.Round(x * sx))
	row := int(math.Round(y * sy))
	if align == captcha.AlignCenter {
		col -= utf8.RuneCountInString(text) / 2
	}
	s.screen.DrawText(col, row, text, c)
}
