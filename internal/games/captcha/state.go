package captcha

import (
	"fmt"

	"github.com/vovakirdan/spooky-captcha/internal/core"
)

// Phase is the attempt's position in the challenge sequence.
type Phase int

const (
	PhaseInstructions Phase = iota // control hints shown, timer not armed yet
	PhaseCountdown                 // control hints shown, countdown running
	PhaseActive                    // physics, collision and scoring evaluate
	PhaseFailed                    // hit a barrier or left the surface
	PhasePassed                    // reached the pass threshold
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseInstructions:
		return "instructions"
	case PhaseCountdown:
		return "countdown"
	case PhaseActive:
		return "active"
	case PhaseFailed:
		return "failed"
	case PhasePassed:
		return "passed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ShowsInstructions reports whether the instruction panel covers the scene.
func (p Phase) ShowsInstructions() bool {
	return p == PhaseInstructions || p == PhaseCountdown
}

// Terminal reports whether the attempt has an outcome.
func (p Phase) Terminal() bool {
	return p == PhaseFailed || p == PhasePassed
}

// Transition records one phase change.
type Transition struct {
	From  Phase
	To    Phase
	Score int
	Cycle int
}

// Player is the glyph the user steers. X never changes.
type Player struct {
	X        float64
	Y        float64
	Velocity float64
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, PlayerSize, PlayerSize)
}

// Obstacle is a barrier pair with a gap. GapTop is fixed at creation.
type Obstacle struct {
	X      float64
	Width  float64
	GapTop int
	Scored bool

	triggered bool // already spawned its successor
}

// Span returns the obstacle's horizontal extent as a zero-height box.
func (o Obstacle) Span() core.RectF {
	return core.NewRectF(o.X, 0, o.Width, 0)
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// GapBottom returns the y-coordinate where the bottom barrier starts.
func (o Obstacle) GapBottom() float64 {
	return float64(o.GapTop) + GapHeight
}

// State is the single aggregate owned by Game. Nothing outside the
// controller mutates it.
type State struct {
	Player    Player
	Obstacles []Obstacle // spawn order, oldest first
	Score     int
	Phase     Phase
	Countdown int
	Cycle     int // frame cycles since the last reset
	Spawned   int // obstacles created since the last reset
	Rain      Rain
}

// clone returns a deep copy safe to hand out.
func (s State) clone() State {
	c := s
	c.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	c.Rain = s.Rain.clone()
	return c
}
