package systems

import (
	"math"

	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi"
)

// Intents are silent no-ops when the fighter cannot act on them.

// Move sets the walk velocity. dir < 0 walks left, anything else walks right.
func Move(e *donburi.Entry, dir int) {
	fighter := components.Fighter.Get(e)
	melee := components.MeleeAttack.Get(e)
	if fighter.Dead || fighter.IsHurt || melee.Attacking || melee.BlockStun > 0 {
		return
	}

	physics := components.Physics.Get(e)
	if dir < 0 {
		physics.SpeedX = -fighter.Speed
	} else {
		physics.SpeedX = fighter.Speed
	}
}

// Stop applies ground friction to the walk velocity.
func Stop(e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	melee := components.MeleeAttack.Get(e)
	if fighter.IsHurt || melee.Attacking {
		return
	}

	physics := components.Physics.Get(e)
	physics.SpeedX *= cfg.Fighter.StopFriction
	if math.Abs(physics.SpeedX) < cfg.Fighter.StopThreshold {
		physics.SpeedX = 0
	}
}

// Jump launches a grounded fighter upward and drops its guard.
func Jump(e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	melee := components.MeleeAttack.Get(e)
	if fighter.Dead || fighter.IsHurt || melee.BlockStun > 0 {
		return
	}

	physics := components.Physics.Get(e)
	if !physics.OnGround {
		return
	}
	physics.SpeedY = -fighter.JumpPower
	physics.OnGround = false
	melee.Blocking = false
}

// Block raises or lowers the guard. The guard only holds on the ground.
func Block(e *donburi.Entry, on bool) {
	fighter := components.Fighter.Get(e)
	melee := components.MeleeAttack.Get(e)
	if fighter.Dead || fighter.IsHurt || melee.Attacking {
		return
	}
	melee.Blocking = on && components.Physics.Get(e).OnGround
}

// Attack starts attack index (1..3). It reports whether the attack began.
func Attack(e *donburi.Entry, index int) bool {
	attack, ok := cfg.AttackFor(index)
	if !ok {
		return false
	}

	fighter := components.Fighter.Get(e)
	melee := components.MeleeAttack.Get(e)
	if fighter.Dead || fighter.IsHurt || melee.AttackCooldown > 0 || melee.Blocking || melee.BlockStun > 0 {
		return false
	}

	melee.Attacking = true
	melee.CurrentAttack = index
	melee.AttackCooldown = attack.Cooldown
	melee.HasSpawnedHitbox = false
	components.Physics.Get(e).SpeedX = 0
	return true
}
