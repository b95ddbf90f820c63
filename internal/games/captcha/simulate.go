package captcha

import "github.com/vovakirdan/spooky-captcha/internal/core"

// Pilot chooses the input for each cycle of a headless run.
type Pilot interface {
	Decide(s State) core.InputFrame
}

// IntervalPilot jumps on every Every-th active cycle.
type IntervalPilot struct {
	Every int
}

// Decide implements Pilot.
func (p IntervalPilot) Decide(s State) core.InputFrame {
	in := core.NewInputFrame()
	if s.Phase == PhaseActive && p.Every > 0 && s.Cycle%p.Every == 0 {
		in.Set(core.ActionJump)
	}
	return in
}

// Outcome summarizes a headless run.
type Outcome struct {
	Phase   Phase
	Score   int
	Cycles  int
	Spawned int
}

// Simulate plays one attempt without a display. The countdown task is
// emulated by ticking once every cfg.TickRate cycles, so a run at 60 fps
// spends 180 cycles counting down. The run stops at a terminal phase or
// after maxCycles. onTransition may be nil.
func Simulate(g *Game, cfg core.RuntimeConfig, pilot Pilot, maxCycles int, onTransition func(Transition)) Outcome {
	emit := func(ts []Transition) {
		if onTransition == nil {
			return
		}
		for _, t := range ts {
			onTransition(t)
		}
	}

	perTick := cfg.TickRate
	if perTick <= 0 {
		perTick = 1
	}

	g.Reset(cfg)
	emit(g.StartCountdown())

	cycles := 0
	for ; cycles < maxCycles && !g.Phase().Terminal(); cycles++ {
		res := g.Step(pilot.Decide(g.state))
		emit(res.Transitions)
		if g.Phase() == PhaseCountdown && (cycles+1)%perTick == 0 {
			emit(g.CountdownTick())
		}
	}

	return Outcome{
		Phase:   g.state.Phase,
		Score:   g.state.Score,
		Cycles:  cycles,
		Spawned: g.state.Spawned,
	}
}
