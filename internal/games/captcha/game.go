// Package captcha implements the Spooky Captcha: a gap-runner used as a
// human-verification challenge. Steering the player past PassThreshold
// obstacles passes the captcha.
//
// The game is a pure simulation. The platform drives two independent tasks
// against it: a frame task calling Step once per display refresh and a
// countdown task calling CountdownTick every CountdownInterval. Both run on
// the platform's single event loop, so Game needs no locking.
package captcha

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/spooky-captcha/internal/assets"
	"github.com/vovakirdan/spooky-captcha/internal/core"
)

// Surface dimensions in game units.
const (
	SurfaceWidth  = 800.0
	SurfaceHeight = 600.0
)

// Physics constants, in units per cycle
const (
	Gravity       = 0.3
	JumpVelocity  = -4.0
	PlayerStartX  = 144.0
	PlayerStartY  = 150.0
	PlayerSize    = 40.0
	ObstacleSpeed = 2.0
)

// Obstacle layout
const (
	ObstacleWidth      = 50.0
	GapHeight          = 170.0
	MinGapTop          = 50
	GapTopBottomMargin = 200
	SpawnTriggerX      = 100.0
)

// Challenge rules
const (
	PassThreshold     = 5
	CountdownStart    = 3
	CountdownInterval = time.Second
)

// Options configures a Game.
type Options struct {
	// EvictPassed drops scored obstacles once they leave the surface.
	EvictPassed bool
	// Assets supplies the sprites drawn by Render. Nil uses the embedded set.
	Assets *assets.Set
}

// StepResult is returned by Step after each cycle.
type StepResult struct {
	State       core.GameState
	Transitions []Transition
}

// Restarted reports whether this cycle's input restarted the attempt.
// The driver must arm a new countdown when it did.
func (r StepResult) Restarted() bool {
	for _, t := range r.Transitions {
		if t.To == PhaseInstructions {
			return true
		}
	}
	return false
}

// Game owns the captcha state and is the only code allowed to mutate it.
type Game struct {
	opts     Options
	config   core.RuntimeConfig
	rng      *rand.Rand
	gen      *Generator
	surfaceW float64
	surfaceH float64
	state    State
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	if opts.Assets == nil {
		opts.Assets = assets.Default()
	}
	return &Game{
		opts:     opts,
		surfaceW: SurfaceWidth,
		surfaceH: SurfaceHeight,
	}
}

// ID returns the identifier used in logs.
func (g *Game) ID() string {
	return "spooky"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Spooky Captcha"
}

// Reset starts a fresh attempt: instructions showing, countdown at its
// start value, score 0 and a single obstacle at the right edge.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.gen = NewGenerator(g.rng, g.surfaceW)

	g.state = State{
		Player: Player{
			X: PlayerStartX,
			Y: PlayerStartY,
		},
		Obstacles: make([]Obstacle, 0, 8),
		Phase:     PhaseInstructions,
		Countdown: CountdownStart,
	}
	g.spawnObstacle()
	g.state.Rain = newRain(g.rng, g.surfaceW, g.surfaceH)
}

// StartCountdown arms the countdown. It is a no-op outside Instructions.
func (g *Game) StartCountdown() []Transition {
	if g.state.Phase != PhaseInstructions {
		return nil
	}
	return g.transition(PhaseCountdown)
}

// CountdownTick is called once per CountdownInterval by the countdown task.
// Reaching zero is the only way into the active phase. Ticks arriving in any
// other phase are ignored.
func (g *Game) CountdownTick() []Transition {
	if g.state.Phase != PhaseCountdown {
		return nil
	}
	g.state.Countdown--
	if g.state.Countdown > 0 {
		return nil
	}
	return g.transition(PhaseActive)
}

// HandleAction applies one input between cycles.
//
// Jump only acts while active. Retry only acts after a failure and restarts
// the attempt with a seed drawn from the current one, leaving the game in
// Instructions.
func (g *Game) HandleAction(a core.Action) []Transition {
	switch a {
	case core.ActionJump:
		if g.state.Phase == PhaseActive {
			jump(&g.state.Player)
		}
	case core.ActionRetry:
		if g.state.Phase == PhaseFailed {
			from, score, cycle := g.state.Phase, g.state.Score, g.state.Cycle
			cfg := g.config
			cfg.Seed = g.rng.Int63()
			g.Reset(cfg)
			return []Transition{{From: from, To: PhaseInstructions, Score: score, Cycle: cycle}}
		}
	}
	return nil
}

// Step applies the frame's input and advances the simulation by one cycle.
func (g *Game) Step(in core.InputFrame) StepResult {
	var out []Transition
	for _, a := range []core.Action{core.ActionJump, core.ActionRetry} {
		if in.Has(a) {
			out = append(out, g.HandleAction(a)...)
		}
	}

	g.state.Cycle++

	switch g.state.Phase {
	case PhaseActive:
		g.advanceObstacles()
		applyGravity(&g.state.Player)
		out = append(out, g.checkGameOver()...)
		out = append(out, g.checkScore()...)
	case PhasePassed:
		g.state.Rain.advance(g.rng, g.surfaceH)
	}

	return StepResult{State: g.State(), Transitions: out}
}

// State returns the coarse status for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Running:  g.state.Phase == PhaseActive,
		GameOver: g.state.Phase.Terminal(),
		Passed:   g.state.Phase == PhasePassed,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Snapshot returns a deep copy of the full state.
func (g *Game) Snapshot() State {
	return g.state.clone()
}

func (g *Game) transition(to Phase) []Transition {
	t := Transition{
		From:  g.state.Phase,
		To:    to,
		Score: g.state.Score,
		Cycle: g.state.Cycle,
	}
	g.state.Phase = to
	return []Transition{t}
}
