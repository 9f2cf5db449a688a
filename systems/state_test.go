package systems

import (
	"testing"

	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/stretchr/testify/assert"
)

func TestResolveState_Priority(t *testing.T) {
	tests := []struct {
		name    string
		fighter components.FighterData
		physics components.PhysicsData
		melee   components.MeleeAttackData
		want    cfg.StateID
	}{
		{
			name:    "dead beats everything",
			fighter: components.FighterData{Dead: true},
			physics: components.PhysicsData{OnGround: true},
			melee:   components.MeleeAttackData{Blocking: true, Attacking: true},
			want:    cfg.Hurt,
		},
		{
			name:    "hurt beats block",
			fighter: components.FighterData{IsHurt: true},
			physics: components.PhysicsData{OnGround: true},
			melee:   components.MeleeAttackData{Blocking: true},
			want:    cfg.Hurt,
		},
		{
			name:    "grounded block",
			physics: components.PhysicsData{OnGround: true, SpeedX: 6},
			melee:   components.MeleeAttackData{Blocking: true},
			want:    cfg.Block,
		},
		{
			name:    "airborne block flag falls through to jump",
			physics: components.PhysicsData{OnGround: false},
			melee:   components.MeleeAttackData{Blocking: true},
			want:    cfg.Jump,
		},
		{
			name:    "attack in the air",
			physics: components.PhysicsData{OnGround: false},
			melee:   components.MeleeAttackData{Attacking: true, CurrentAttack: 2},
			want:    cfg.Attack2,
		},
		{
			name:    "attack 3",
			physics: components.PhysicsData{OnGround: true},
			melee:   components.MeleeAttackData{Attacking: true, CurrentAttack: 3},
			want:    cfg.Attack3,
		},
		{
			name:    "walk toward facing",
			fighter: components.FighterData{FacingRight: true},
			physics: components.PhysicsData{OnGround: true, SpeedX: 6},
			want:    cfg.Walk,
		},
		{
			name:    "walk away from facing",
			fighter: components.FighterData{FacingRight: true},
			physics: components.PhysicsData{OnGround: true, SpeedX: -6},
			want:    cfg.WalkBack,
		},
		{
			name:    "walk left facing left",
			fighter: components.FighterData{FacingRight: false},
			physics: components.PhysicsData{OnGround: true, SpeedX: -6},
			want:    cfg.Walk,
		},
		{
			name:    "drift below walk threshold",
			physics: components.PhysicsData{OnGround: true, SpeedX: 0.5},
			want:    cfg.Idle,
		},
		{
			name:    "idle",
			physics: components.PhysicsData{OnGround: true},
			want:    cfg.Idle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveState(&tt.fighter, &tt.physics, &tt.melee)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateState_SwitchesAnimationOnChange(t *testing.T) {
	w, p1, p2 := newArena(t, 200, 920)
	anim := components.Animation.Get(p1)
	idle := anim.CurrentAnimation

	Move(p1, 1)
	UpdateFighter(w, p1, p2)

	state := components.State.Get(p1)
	assert.Equal(t, cfg.Walk, state.CurrentState)
	assert.Equal(t, cfg.Idle, state.PreviousState)
	assert.Equal(t, cfg.Walk, anim.CurrentSheet)
	assert.NotSame(t, idle, anim.CurrentAnimation)
	assert.Equal(t, 1, state.StateTimer)

	UpdateFighter(w, p1, p2)
	assert.Equal(t, 2, state.StateTimer)
}

func TestUpdateState_DeadFighterOnlyProjectsState(t *testing.T) {
	w, p1, p2 := newArena(t, 200, 920)
	components.Fighter.Get(p2).Dead = true
	components.Physics.Get(p2).SpeedX = 6

	UpdateFighter(w, p2, p1)

	assert.Equal(t, cfg.Hurt, StateOf(p2))
	assert.Equal(t, 920.0, components.Object.Get(p2).X)
}
