package systems

import (
	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi"
)

// ApplyControls stores the snapshot on the fighter and turns it into
// intents. Left wins over right, and at most one attack starts per tick
// with the lowest index taking priority.
func ApplyControls(e *donburi.Entry, controls components.ControlState) {
	control := components.Control.Get(e)
	control.Previous = control.Current
	control.Current = controls

	switch {
	case controls.Pressed(cfg.ActionMoveLeft):
		Move(e, -1)
	case controls.Pressed(cfg.ActionMoveRight):
		Move(e, 1)
	default:
		Stop(e)
	}

	if controls.Pressed(cfg.ActionJump) {
		Jump(e)
	}

	Block(e, controls.Pressed(cfg.ActionBlock))

	for i, action := range cfg.AttackActions {
		if controls.Pressed(action) {
			Attack(e, i+1)
			break
		}
	}
}
