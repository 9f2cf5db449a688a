package components

import (
	"testing"

	cfg "github.com/automoto/bancho-vs/config"
	"github.com/stretchr/testify/assert"
)

type countingAnimator struct {
	frame    int
	restarts int
}

func (a *countingAnimator) Frame() int { return a.frame }

func (a *countingAnimator) FrameCount() int { return 4 }

func (a *countingAnimator) Update() { a.frame = (a.frame + 1) % 4 }

func (a *countingAnimator) Restart() {
	a.frame = 0
	a.restarts++
}

func (a *countingAnimator) IsFinished() bool { return a.frame == 3 }

func TestSetAnimation(t *testing.T) {
	idle := &countingAnimator{}
	walk := &countingAnimator{frame: 2}
	anim := &AnimationData{
		CurrentSheet: cfg.StateNone,
		Animations: map[cfg.StateID]Animator{
			cfg.Idle: idle,
			cfg.Walk: walk,
		},
	}

	anim.SetAnimation(cfg.Idle)
	assert.Same(t, idle, anim.CurrentAnimation)
	assert.Equal(t, 1, idle.restarts)

	idle.Update()
	anim.SetAnimation(cfg.Idle)
	assert.Equal(t, 1, idle.restarts, "same state keeps playing")
	assert.Equal(t, 1, idle.Frame())

	anim.SetAnimation(cfg.Walk)
	assert.Same(t, walk, anim.CurrentAnimation)
	assert.Equal(t, 0, walk.Frame())

	anim.SetAnimation(cfg.Block)
	assert.Nil(t, anim.CurrentAnimation)
	assert.Equal(t, cfg.Block, anim.CurrentSheet)
}

func TestMeterAdd_Caps(t *testing.T) {
	m := MeterData{Max: 100, Current: 95}
	m.Add(10)
	assert.Equal(t, 100, m.Current)
}

func TestComboClear(t *testing.T) {
	c := ComboData{Count: 3, Timer: 12, LastHitAttack: 2}
	c.Clear()
	assert.Zero(t, c.Count)
	assert.Zero(t, c.LastHitAttack)
	assert.Zero(t, c.Timer)
}

func TestMatchWins(t *testing.T) {
	var m MatchData
	assert.Equal(t, 1, m.AddWin(cfg.SideTwo))
	assert.Equal(t, 2, m.AddWin(cfg.SideTwo))
	assert.Equal(t, 0, m.WinsFor(cfg.SideOne))
	assert.Equal(t, 2, m.WinsFor(cfg.SideTwo))
}

func TestControlStatePressed(t *testing.T) {
	var c ControlState
	c[cfg.ActionBlock] = true
	assert.True(t, c.Pressed(cfg.ActionBlock))
	assert.False(t, c.Pressed(cfg.ActionJump))
	assert.False(t, c.Pressed(cfg.ActionCount))
}
