package components

import (
	"github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi"
)

// Animator is the handle the simulation reads to time attacks. Frame data
// and pixels belong to whoever implements it.
type Animator interface {
	Frame() int
	FrameCount() int
	Update()
	Restart()
	IsFinished() bool
}

type AnimationData struct {
	CurrentAnimation Animator
	CurrentSheet     config.StateID
	Animations       map[config.StateID]Animator
}

// SetAnimation switches to the handle for state and restarts it. Switching
// to the state already showing is a no-op.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentSheet = state
		return
	}
	a.CurrentAnimation = anim
	a.CurrentSheet = state
	a.CurrentAnimation.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()
