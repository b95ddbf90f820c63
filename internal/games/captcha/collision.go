package captcha

// outOfBounds reports whether the player's bottom edge reached the floor.
func outOfBounds(p Player, surfaceH float64) bool {
	return p.Rect().Bottom() >= surfaceH
}

// hitsObstacle reports whether the player overlaps either barrier body.
func hitsObstacle(p Player, o Obstacle) bool {
	pr := p.Rect()
	if !pr.OverlapsX(o.Span()) {
		return false
	}
	return pr.Y < float64(o.GapTop) || pr.Bottom() > o.GapBottom()
}

// checkGameOver evaluates every fail condition against every obstacle in
// spawn order. Any hit fails the attempt; several hits still produce a
// single transition.
func (g *Game) checkGameOver() []Transition {
	s := &g.state
	hits := 0

	for _, o := range s.Obstacles {
		if outOfBounds(s.Player, g.surfaceH) || hitsObstacle(s.Player, o) {
			hits++
		}
	}
	// The sequence is never empty while active, but the floor still applies.
	if len(s.Obstacles) == 0 && outOfBounds(s.Player, g.surfaceH) {
		hits++
	}

	if hits == 0 || s.Phase != PhaseActive {
		return nil
	}
	return g.transition(PhaseFailed)
}

// checkScore awards one point per obstacle whose trailing edge is behind the
// player. Points still count in the cycle the attempt failed, but only an
// active attempt can pass.
func (g *Game) checkScore() []Transition {
	s := &g.state
	var out []Transition

	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		if o.Scored || o.Right() >= s.Player.X {
			continue
		}
		o.Scored = true
		s.Score++
		if s.Score >= PassThreshold && s.Phase == PhaseActive {
			out = append(out, g.transition(PhasePassed)...)
		}
	}
	return out
}
