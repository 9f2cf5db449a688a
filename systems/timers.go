package systems

// updateTimers counts every per-fighter cooldown down by one tick.
func updateTimers(f *fighterParts) {
	melee := f.melee
	if melee.AttackCooldown > 0 {
		melee.AttackCooldown--
	}
	if melee.HitCooldown > 0 {
		melee.HitCooldown--
	}
	if melee.BlockStun > 0 {
		melee.BlockStun--
	}

	combo := f.combo
	if combo.Timer > 0 {
		combo.Timer--
		if combo.Timer == 0 {
			combo.Clear()
		}
	}

	if f.fighter.IsHurt && melee.HitCooldown <= 0 {
		f.fighter.IsHurt = false
	}
}
