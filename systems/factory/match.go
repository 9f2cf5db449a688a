package factory

import (
	"github.com/automoto/bancho-vs/archetypes"
	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi"
)

// CreateMatch creates the singleton match entity at round 1 with no wins.
func CreateMatch(w donburi.World) *donburi.Entry {
	match := archetypes.Match.Spawn(w)
	components.Match.SetValue(match, components.MatchData{
		State: cfg.MatchStatePreRound,
		Round: 1,
	})
	return match
}
