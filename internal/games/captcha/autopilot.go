package captcha

import "github.com/vovakirdan/spooky-captcha/internal/core"

// Autopilot steers the player through gaps. It exists for the simulate
// command and for end-to-end tests; the challenge itself never consults it.
type Autopilot struct{}

// Target returns the y the player's top edge should hover around: the
// centre of the first unscored gap, or mid-surface when there is none.
func (Autopilot) Target(s State) float64 {
	for _, o := range s.Obstacles {
		if !o.Scored {
			return float64(o.GapTop) + (GapHeight-PlayerSize)/2
		}
	}
	return (SurfaceHeight - PlayerSize) / 2
}

// Decide returns the input for the next cycle. It jumps when the player is
// below the target and no longer rising.
func (a Autopilot) Decide(s State) core.InputFrame {
	in := core.NewInputFrame()
	if s.Phase != PhaseActive {
		return in
	}
	if s.Player.Y > a.Target(s) && s.Player.Velocity >= 0 {
		in.Set(core.ActionJump)
	}
	return in
}
