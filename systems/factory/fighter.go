package factory

import (
	"github.com/automoto/bancho-vs/archetypes"
	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/automoto/bancho-vs/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateFighter spawns a fighter for side at x on the ground line and adds
// its body to the arena space.
func CreateFighter(w donburi.World, side cfg.Side, character cfg.CharacterID, x float64) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(w)

	obj := resolv.NewObject(x, cfg.Arena.GroundY, cfg.Fighter.Width, cfg.Fighter.Height)
	obj.AddTags(tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Fighter.Width, cfg.Fighter.Height))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Fighter.SetValue(fighter, components.FighterData{
		Side:        side,
		Character:   character,
		FacingRight: side == cfg.SideOne,
		Speed:       cfg.Fighter.Speed,
		JumpPower:   cfg.Fighter.JumpPower,
	})
	components.State.SetValue(fighter, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		OnGround: true,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Fighter.MaxHealth,
		Max:     cfg.Fighter.MaxHealth,
	})
	components.Meter.SetValue(fighter, components.MeterData{
		Max: cfg.Fighter.MaxSuper,
	})

	animData := GenerateAnimations(character)
	animData.SetAnimation(cfg.Idle)
	components.Animation.Set(fighter, animData)

	return fighter
}
