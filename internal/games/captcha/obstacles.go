package captcha

import (
	"math/rand"
)

// Generator creates obstacles at the right edge of the surface.
type Generator struct {
	rng      *rand.Rand
	surfaceW float64
}

// NewGenerator creates a generator drawing gap positions from rng.
func NewGenerator(rng *rand.Rand, surfaceW float64) *Generator {
	return &Generator{rng: rng, surfaceW: surfaceW}
}

// Create returns a new obstacle whose gap top is a uniform integer in
// [MinGapTop, surfaceH-GapTopBottomMargin].
func (g *Generator) Create(surfaceH float64) Obstacle {
	maxTop := int(surfaceH) - GapTopBottomMargin
	top := MinGapTop
	if maxTop > MinGapTop {
		top = MinGapTop + g.rng.Intn(maxTop-MinGapTop+1)
	}

	return Obstacle{
		X:      g.surfaceW,
		Width:  ObstacleWidth,
		GapTop: top,
	}
}

// advanceObstacles moves every obstacle left and spawns a successor for each
// one that reached the trigger line this cycle. Successors are appended
// after the move pass so they start at the right edge.
func (g *Game) advanceObstacles() {
	s := &g.state
	spawn := 0

	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		o.X -= ObstacleSpeed

		if !o.triggered && o.X <= SpawnTriggerX {
			o.triggered = true
			spawn++
		}
	}

	for ; spawn > 0; spawn-- {
		g.spawnObstacle()
	}

	if g.opts.EvictPassed {
		g.evictObstacles()
	}
}

func (g *Game) spawnObstacle() {
	g.state.Obstacles = append(g.state.Obstacles, g.gen.Create(g.surfaceH))
	g.state.Spawned++
}

// evictObstacles drops scored obstacles that are fully off the surface.
// They can no longer collide, score or be drawn.
func (g *Game) evictObstacles() {
	kept := g.state.Obstacles[:0]
	for _, o := range g.state.Obstacles {
		if o.Scored && o.Right() < 0 {
			continue
		}
		kept = append(kept, o)
	}
	g.state.Obstacles = kept
}
