package captcha

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorCreate(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(42)), SurfaceWidth)

	lo, hi := int(SurfaceHeight), 0
	for i := 0; i < 20000; i++ {
		o := gen.Create(SurfaceHeight)
		assert.Equal(t, SurfaceWidth, o.X)
		assert.Equal(t, ObstacleWidth, o.Width)
		assert.False(t, o.Scored)
		lo = min(lo, o.GapTop)
		hi = max(hi, o.GapTop)
	}

	assert.Equal(t, MinGapTop, lo)
	assert.Equal(t, int(SurfaceHeight)-GapTopBottomMargin, hi)
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(7)), SurfaceWidth)
	b := NewGenerator(rand.New(rand.NewSource(7)), SurfaceWidth)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Create(SurfaceHeight), b.Create(SurfaceHeight))
	}
}

func TestGeneratorSmallSurface(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)), 300)

	o := gen.Create(200)
	assert.Equal(t, MinGapTop, o.GapTop, "gap pins to the top margin when there is no room")
	assert.Equal(t, 300.0, o.X)
}
