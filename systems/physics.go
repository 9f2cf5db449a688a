package systems

import (
	cfg "github.com/automoto/bancho-vs/config"
)

// updatePhysics integrates velocity, keeps the body on the floor and inside
// the arena, and turns the fighter toward its opponent.
func updatePhysics(f, opponent *fighterParts) {
	physics := f.physics
	body := f.body

	if !physics.OnGround {
		physics.SpeedY += physics.Gravity
	}

	// Attacks, hit reactions and block-stun root the fighter horizontally.
	if !f.fighter.IsHurt && !f.melee.Attacking && f.melee.BlockStun <= 0 {
		body.X += physics.SpeedX
	}
	body.Y += physics.SpeedY

	if body.Y >= cfg.Arena.GroundY {
		body.Y = cfg.Arena.GroundY
		physics.SpeedY = 0
		physics.OnGround = true
	} else {
		physics.OnGround = false
	}

	minX := cfg.Arena.Margin
	maxX := cfg.Arena.Width - cfg.Arena.Margin - body.W
	if body.X < minX {
		body.X = minX
	} else if body.X > maxX {
		body.X = maxX
	}

	f.fighter.FacingRight = body.CenterX() < opponent.body.CenterX()

	body.Update()
}
