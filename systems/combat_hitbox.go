package systems

import (
	"math"

	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/automoto/bancho-vs/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Hit markers sit this far below the target's top edge.
const hitMarkerOffsetY = 50

// updateAttackWindow spawns the attack box on the active frame and ends the
// attack once its animation has played out.
func updateAttackWindow(w donburi.World, f *fighterParts) {
	melee := f.melee
	if !melee.Attacking {
		return
	}
	anim := f.anim.CurrentAnimation
	if anim == nil {
		// Without frame timing the attack can never resolve.
		endAttack(w, f)
		return
	}

	if !melee.HasSpawnedHitbox && anim.Frame() == anim.FrameCount()/2 {
		spawnHitbox(w, f)
	}

	if anim.IsFinished() {
		endAttack(w, f)
	}
}

func endAttack(w donburi.World, f *fighterParts) {
	f.melee.Attacking = false
	clearHitbox(w, f.melee)
	if f.anim.CurrentAnimation != nil {
		f.anim.CurrentAnimation.Restart()
	}
}

func spawnHitbox(w donburi.World, f *fighterParts) {
	attack, ok := cfg.AttackFor(f.melee.CurrentAttack)
	if !ok {
		return
	}
	clearHitbox(w, f.melee)
	body := f.body

	x := body.X - attack.Reach
	if f.fighter.FacingRight {
		x = body.X + body.W
	}
	y := body.Y + cfg.Combat.HitboxOffsetY

	hitbox := resolv.NewObject(x, y, attack.Reach, cfg.Combat.HitboxHeight, tags.ResolvHitbox)
	hitbox.SetShape(resolv.NewRectangle(0, 0, attack.Reach, cfg.Combat.HitboxHeight))
	hitbox.Data = f.entry

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(hitbox)
	}

	f.melee.ActiveHitbox = hitbox
	f.melee.HasSpawnedHitbox = true
}

// clearHitbox drops the fighter's attack box, if any, from the arena.
func clearHitbox(w donburi.World, melee *components.MeleeAttackData) {
	if melee.ActiveHitbox == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Remove(melee.ActiveHitbox)
	}
	melee.ActiveHitbox = nil
}

// attackConnects reports whether f's attack box overlaps the opponent body.
func attackConnects(f, opponent *fighterParts) bool {
	box := f.melee.ActiveHitbox
	if box == nil {
		return false
	}

	// Broad phase through the arena space, then an exact overlap test.
	check := box.Check(0, 0, tags.ResolvFighter)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry == opponent.entry {
			return overlaps(box, opponent.body.Object)
		}
	}
	return false
}

// overlaps is a strict AABB test; touching edges do not count.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// resolveHit applies a landed attack from f to opponent.
func resolveHit(w donburi.World, f, opponent *fighterParts) {
	attack, ok := cfg.AttackFor(f.melee.CurrentAttack)
	if !ok {
		return
	}

	direction := -1.0
	if f.fighter.FacingRight {
		direction = 1.0
	}

	hit := HitEventData{
		Attacker: f.fighter.Side,
		Target:   opponent.fighter.Side,
		Attack:   f.melee.CurrentAttack,
		X:        opponent.body.CenterX(),
		Y:        opponent.body.Y + hitMarkerOffsetY,
	}

	if opponent.melee.Blocking {
		chip := int(math.Floor(float64(attack.Damage) * cfg.Combat.BlockDamageRatio))
		applyChipDamage(w, opponent.entry, chip)

		opponent.melee.BlockStun = cfg.Combat.BlockStunFrames
		opponent.physics.SpeedX = direction * cfg.Combat.BlockPushback
		f.meter.Add(cfg.Combat.BlockMeterGain)

		hit.Damage = chip
		hit.Blocked = true
		HitEvent.Publish(w, hit)
	} else {
		TakeDamage(w, opponent.entry, attack.Damage)

		opponent.physics.SpeedX = direction * cfg.Combat.Knockback
		if f.melee.CurrentAttack == cfg.Combat.LauncherAttack {
			opponent.physics.SpeedY = cfg.Combat.LauncherLift
		}

		f.combo.Count++
		f.combo.Timer = cfg.Combat.ComboWindowFrames
		f.combo.LastHitAttack = f.melee.CurrentAttack
		f.meter.Add(cfg.Combat.HitMeterGain)

		hit.Damage = attack.Damage
		HitEvent.Publish(w, hit)
		if f.combo.Count > 1 {
			ComboEvent.Publish(w, ComboEventData{Side: f.fighter.Side, Count: f.combo.Count})
		}
	}

	publishHealthMeter(w, f.entry)
	publishHealthMeter(w, opponent.entry)
}

func publishHealthMeter(w donburi.World, e *donburi.Entry) {
	health := components.Health.Get(e)
	meter := components.Meter.Get(e)
	HealthMeterEvent.Publish(w, HealthMeterEventData{
		Side:      components.Fighter.Get(e).Side,
		Health:    health.Current,
		MaxHealth: health.Max,
		Super:     meter.Current,
		MaxSuper:  meter.Max,
	})
}
