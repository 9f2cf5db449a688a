package components

import (
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi"
)

// ControlState is one side's virtual button snapshot for a tick.
type ControlState [cfg.ActionCount]bool

// Pressed reports whether the button is held.
func (c ControlState) Pressed(action cfg.ActionID) bool {
	if action < 0 || action >= cfg.ActionCount {
		return false
	}
	return c[action]
}

// ControlData holds the snapshot fed to a fighter this tick.
type ControlData struct {
	Current  ControlState
	Previous ControlState
}

var Control = donburi.NewComponentType[ControlData]()
