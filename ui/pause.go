package ui

import (
	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/automoto/bancho-vs/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const pauseHint = "Esc: Resume   F1: Boxes"

// TogglePause flips the pause flag and returns the new value.
func TogglePause(w donburi.World) bool {
	pause := GetOrCreatePause(w)
	pause.IsPaused = !pause.IsPaused
	return pause.IsPaused
}

// IsPaused reports whether the pause flag is set.
func IsPaused(w donburi.World) bool {
	return GetOrCreatePause(w).IsPaused
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(e.World) {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.UI.PauseOverlay, false)

	face := fonts.Announcement.Get()
	label := "PAUSED"
	x := (int(width) - fonts.TextWidth(face, label)) / 2
	text.Draw(screen, label, face, x, int(height)/2, cfg.White)

	hintFace := fonts.HUD.Get()
	hintX := (int(width) - fonts.TextWidth(hintFace, pauseHint)) / 2
	text.Draw(screen, pauseHint, hintFace, hintX, int(height)-12, cfg.White)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e.World) {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	if _, ok := components.Pause.First(w); !ok {
		w.Entry(w.Create(components.Pause))
	}

	ent, _ := components.Pause.First(w)
	return components.Pause.Get(ent)
}
