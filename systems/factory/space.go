package factory

import (
	"github.com/automoto/bancho-vs/archetypes"
	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the arena collision space. It is tall enough for a
// standing fighter's body below the ground line.
func CreateSpace(w donburi.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	width := int(cfg.Arena.Width)
	height := int(cfg.Arena.GroundY + cfg.Fighter.Height + float64(cfg.Arena.CellHeight))
	spaceData := resolv.NewSpace(width, height, cfg.Arena.CellWidth, cfg.Arena.CellHeight)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}
