package components

import "github.com/yohamta/donburi"

// ComboData tracks a streak of clean hits landed by this fighter.
type ComboData struct {
	Count         int
	Timer         int // frames left before the streak expires
	LastHitAttack int
}

// Clear drops the streak.
func (c *ComboData) Clear() {
	c.Count = 0
	c.Timer = 0
	c.LastHitAttack = 0
}

var Combo = donburi.NewComponentType[ComboData]()
