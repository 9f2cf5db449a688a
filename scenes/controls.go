package scenes

import (
	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBindings maps each virtual button to the keys that press it, per side.
var KeyBindings = [2]map[cfg.ActionID][]ebiten.Key{
	{
		cfg.ActionMoveLeft:  {ebiten.KeyA},
		cfg.ActionMoveRight: {ebiten.KeyD},
		cfg.ActionJump:      {ebiten.KeyW},
		cfg.ActionBlock:     {ebiten.KeySpace},
		cfg.ActionAttack1:   {ebiten.KeyF},
		cfg.ActionAttack2:   {ebiten.KeyG},
		cfg.ActionAttack3:   {ebiten.KeyH},
	},
	{
		cfg.ActionMoveLeft:  {ebiten.KeyArrowLeft},
		cfg.ActionMoveRight: {ebiten.KeyArrowRight},
		cfg.ActionJump:      {ebiten.KeyArrowUp},
		cfg.ActionBlock:     {ebiten.KeyArrowDown},
		cfg.ActionAttack1:   {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		cfg.ActionAttack2:   {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		cfg.ActionAttack3:   {ebiten.KeyDelete},
	},
}

// PollControls snapshots the keyboard into one control state per side.
func PollControls() [2]components.ControlState {
	var controls [2]components.ControlState
	for side, bindings := range KeyBindings {
		for action, keys := range bindings {
			for _, key := range keys {
				if ebiten.IsKeyPressed(key) {
					controls[side][action] = true
					break
				}
			}
		}
	}
	return controls
}
