package ui

import (
	"image/color"

	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/automoto/bancho-vs/fonts"
	"github.com/automoto/bancho-vs/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawFighters draws each body as a filled rectangle in its side colour with
// the current action state above it.
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		body := components.Object.Get(entry)
		state := components.State.Get(entry)
		melee := components.MeleeAttack.Get(entry)

		clr := cfg.UI.SideColors[fighter.Side.Index()]
		switch {
		case fighter.Dead:
			clr = color.RGBA{R: clr.R / 3, G: clr.G / 3, B: clr.B / 3, A: 255}
		case fighter.IsHurt:
			clr = cfg.White
		}

		x := float32(body.X)
		y := screenY(body.Y)
		w := float32(body.W)
		h := float32(body.H)
		vector.FillRect(screen, x, y, w, h, clr, false)
		if melee.Blocking {
			vector.StrokeRect(screen, x-3, y-3, w+6, h+6, 3, cfg.LightBlue, false)
		}

		// Facing marker at head height
		eyeX := x + w*0.75
		if !fighter.FacingRight {
			eyeX = x + w*0.25
		}
		vector.FillCircle(screen, eyeX, y+24, 6, cfg.White, true)

		label := state.CurrentState.String()
		labelX := int(x+w/2) - fonts.TextWidth(face, label)/2
		text.Draw(screen, label, face, labelX, int(y)-8, cfg.White)
	})
}

// DrawHitboxes outlines bodies and attack boxes when the debug overlay is on.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes {
		return
	}

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		body := components.Object.Get(entry)
		vector.StrokeRect(screen, float32(body.X), screenY(body.Y), float32(body.W), float32(body.H), 1, cfg.Yellow, false)

		box := components.MeleeAttack.Get(entry).ActiveHitbox
		if box == nil {
			return
		}
		vector.FillRect(screen, float32(box.X), screenY(box.Y), float32(box.W), float32(box.H), cfg.UI.HitboxColor, false)
	})
}
