package systems

import (
	"math"

	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi"
)

// ResolveState derives a fighter's action state from its flags. The first
// matching rule wins.
func ResolveState(fighter *components.FighterData, physics *components.PhysicsData, melee *components.MeleeAttackData) cfg.StateID {
	switch {
	case fighter.Dead:
		return cfg.Hurt
	case fighter.IsHurt:
		return cfg.Hurt
	case melee.Blocking && physics.OnGround:
		return cfg.Block
	case melee.Attacking:
		if s := cfg.AttackState(melee.CurrentAttack); s != cfg.StateNone {
			return s
		}
		return cfg.Attack1
	case !physics.OnGround:
		return cfg.Jump
	case math.Abs(physics.SpeedX) > cfg.Fighter.WalkThreshold:
		movingRight := physics.SpeedX > 0
		if movingRight == fighter.FacingRight {
			return cfg.Walk
		}
		return cfg.WalkBack
	}
	return cfg.Idle
}

// StateOf returns the fighter's current action state.
func StateOf(e *donburi.Entry) cfg.StateID {
	return components.State.Get(e).CurrentState
}

func updateState(f *fighterParts) {
	next := ResolveState(f.fighter, f.physics, f.melee)
	if next == f.state.CurrentState {
		return
	}
	f.state.PreviousState = f.state.CurrentState
	f.state.CurrentState = next
	f.state.StateTimer = 0
	f.anim.SetAnimation(next)
}
