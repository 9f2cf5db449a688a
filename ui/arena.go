package ui

import (
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	LayerArena ecs.LayerID = iota
	LayerFighters
	LayerHUD
	LayerEffects
)

// screenY maps an arena Y to the screen so a grounded body stands on the
// floor line.
func screenY(y float64) float32 {
	return float32(y - (cfg.Arena.GroundY + cfg.Fighter.Height - cfg.UI.FloorY))
}

func DrawArena(_ *ecs.ECS, screen *ebiten.Image) {
	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)
	floor := float32(cfg.UI.FloorY)

	screen.Fill(cfg.UI.BackgroundTop)
	vector.FillRect(screen, 0, floor, width, height-floor, cfg.UI.Floor, false)

	// Walls at the arena margins
	left := float32(cfg.Arena.Margin)
	right := float32(cfg.Arena.Width - cfg.Arena.Margin)
	vector.StrokeLine(screen, left, 0, left, floor, 1, cfg.Shadow, false)
	vector.StrokeLine(screen, right, 0, right, floor, 1, cfg.Shadow, false)
}
