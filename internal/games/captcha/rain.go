package captcha

import "math/rand"

// Glyph rain shown behind the pass message.
const (
	RainColumnWidth = 20
	RainStep        = 20
	RainResetChance = 0.025
)

// RainColumn is one falling glyph stream.
type RainColumn struct {
	Drop   float64 // y where the next glyph lands
	Glyph  rune    // glyph shown this cycle, 0 before the first advance
	GlyphY float64
}

// Rain is the decorative overlay of the passed screen.
type Rain struct {
	Columns []RainColumn
}

func newRain(rng *rand.Rand, surfaceW, surfaceH float64) Rain {
	cols := int(surfaceW / RainColumnWidth)
	r := Rain{Columns: make([]RainColumn, cols)}
	for i := range r.Columns {
		r.Columns[i].Drop = rng.Float64() * surfaceH
	}
	return r
}

// advance picks a fresh printable glyph per column, shows it at the current
// drop and moves the drop down. Drops below the surface restart at the top
// at random.
func (r *Rain) advance(rng *rand.Rand, surfaceH float64) {
	for i := range r.Columns {
		c := &r.Columns[i]
		c.Glyph = rune('!' + rng.Intn('~'-'!'+1))
		c.GlyphY = c.Drop

		if c.Drop > surfaceH && rng.Float64() < RainResetChance {
			c.Drop = 0
		}
		c.Drop += RainStep
	}
}

func (r Rain) clone() Rain {
	return Rain{Columns: append([]RainColumn(nil), r.Columns...)}
}
