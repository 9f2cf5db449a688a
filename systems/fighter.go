package systems

import (
	"github.com/automoto/bancho-vs/components"
	"github.com/yohamta/donburi"
)

// fighterParts bundles a fighter's components for one update.
type fighterParts struct {
	entry   *donburi.Entry
	fighter *components.FighterData
	body    *components.ObjectData
	physics *components.PhysicsData
	health  *components.HealthData
	meter   *components.MeterData
	state   *components.StateData
	melee   *components.MeleeAttackData
	combo   *components.ComboData
	anim    *components.AnimationData
}

func partsOf(e *donburi.Entry) *fighterParts {
	return &fighterParts{
		entry:   e,
		fighter: components.Fighter.Get(e),
		body:    components.Object.Get(e),
		physics: components.Physics.Get(e),
		health:  components.Health.Get(e),
		meter:   components.Meter.Get(e),
		state:   components.State.Get(e),
		melee:   components.MeleeAttack.Get(e),
		combo:   components.Combo.Get(e),
		anim:    components.Animation.Get(e),
	}
}

// UpdateFighter advances one fighter by a tick with opponent as its only
// interaction target. A dead fighter only has its state projected.
func UpdateFighter(w donburi.World, self, opponent *donburi.Entry) {
	f := partsOf(self)
	if f.fighter.Dead {
		updateState(f)
		return
	}
	o := partsOf(opponent)

	updatePhysics(f, o)
	updateTimers(f)
	updateState(f)
	updateAttackWindow(w, f)

	if f.melee.ActiveHitbox != nil && o.melee.HitCooldown <= 0 && !o.fighter.Dead {
		if attackConnects(f, o) {
			resolveHit(w, f, o)
			clearHitbox(w, f.melee)
		}
	}

	if f.anim.CurrentAnimation != nil {
		f.anim.CurrentAnimation.Update()
	}
	f.state.StateTimer++
}
