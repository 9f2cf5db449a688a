// components/melee.go
package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type MeleeAttackData struct {
	Attacking        bool
	CurrentAttack    int // 1..3 while Attacking
	Blocking         bool
	AttackCooldown   int // frames
	HitCooldown      int // frames
	BlockStun        int // frames
	ActiveHitbox     *resolv.Object // Attack box, owned by this fighter only
	HasSpawnedHitbox bool           // Prevents multiple boxes per attack
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()
