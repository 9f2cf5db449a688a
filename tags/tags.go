package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Match   = donburi.NewTag().SetName("Match")
)

// Resolv tags for physics collision
const (
	ResolvFighter = "fighter"
	ResolvHitbox  = "hitbox"
)
