package systems

import (
	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi"
)

// ResetFighter puts a fighter back on the ground line at startX with full
// health and every transient flag cleared, ready for a new round.
func ResetFighter(w donburi.World, e *donburi.Entry, startX float64) {
	fighter := components.Fighter.Get(e)
	fighter.IsHurt = false
	fighter.Dead = false
	fighter.FacingRight = fighter.Side == cfg.SideOne

	health := components.Health.Get(e)
	health.Current = health.Max
	components.Meter.Get(e).Current = 0

	melee := components.MeleeAttack.Get(e)
	clearHitbox(w, melee)
	*melee = components.MeleeAttackData{}

	*components.Combo.Get(e) = components.ComboData{}

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = true

	body := components.Object.Get(e)
	body.X = startX
	body.Y = cfg.Arena.GroundY
	body.Update()

	control := components.Control.Get(e)
	*control = components.ControlData{}

	state := components.State.Get(e)
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Idle
	state.StateTimer = 0

	anim := components.Animation.Get(e)
	anim.SetAnimation(cfg.Idle)
	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Restart()
	}
}
