package factory

import (
	"github.com/automoto/bancho-vs/assets/animations"
	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
)

// GenerateAnimations builds one animation handle per action state from the
// character's table. Unknown characters fall back to Bancho.
func GenerateAnimations(character cfg.CharacterID) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[character]
	if !ok {
		defs = cfg.CharacterAnimations[cfg.Bancho]
	}

	animData := &components.AnimationData{
		CurrentSheet: cfg.StateNone,
		Animations:   make(map[cfg.StateID]components.Animator, len(defs)),
	}
	for state, def := range defs {
		animData.Animations[state] = animations.FromDef(def)
	}
	return animData
}
