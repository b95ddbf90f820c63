package captcha

// applyGravity integrates one cycle of fall. There is no terminal velocity.
func applyGravity(p *Player) {
	p.Velocity += Gravity
	p.Y += p.Velocity
}

// jump replaces the current velocity with the fixed upward impulse.
func jump(p *Player) {
	p.Velocity = JumpVelocity
}
