package systems

import (
	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi"
)

// TakeDamage applies a clean hit. It is ignored while the fighter is still
// recovering from the previous hit or already down.
func TakeDamage(w donburi.World, e *donburi.Entry, amount int) {
	fighter := components.Fighter.Get(e)
	melee := components.MeleeAttack.Get(e)
	if melee.HitCooldown > 0 || fighter.Dead {
		return
	}

	health := components.Health.Get(e)
	health.Current -= amount

	fighter.IsHurt = true
	melee.HitCooldown = cfg.Combat.HitCooldownFrames

	// Getting hit cancels whatever the fighter was doing
	melee.Attacking = false
	melee.Blocking = false
	clearHitbox(w, melee)
	components.Combo.Get(e).Clear()

	if health.Current <= 0 {
		knockOut(w, e)
	}
}

// applyChipDamage takes blocked damage off the health bar without a hit
// reaction. It can still finish the fighter.
func applyChipDamage(w donburi.World, e *donburi.Entry, amount int) {
	if amount <= 0 || components.Fighter.Get(e).Dead {
		return
	}
	health := components.Health.Get(e)
	health.Current -= amount
	if health.Current <= 0 {
		knockOut(w, e)
	}
}

// knockOut marks the fighter dead and signals the end of the round.
func knockOut(w donburi.World, e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	if fighter.Dead {
		return
	}

	components.Health.Get(e).Current = 0
	fighter.Dead = true

	melee := components.MeleeAttack.Get(e)
	melee.Attacking = false
	melee.Blocking = false
	clearHitbox(w, melee)

	FighterDownEvent.Publish(w, FighterDownEventData{Side: fighter.Side})
}
