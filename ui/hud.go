package ui

import (
	"fmt"

	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/automoto/bancho-vs/fonts"
	"github.com/automoto/bancho-vs/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HUD shows both health and super bars, character names, round wins and the
// round number. Bar values follow HealthMeterEvent and wins follow
// WinDotsEvent.
type HUD struct {
	names  [2]string
	meters [2]systems.HealthMeterEventData
	wins   [2]int
	round  int
}

// NewHUD seeds the HUD from the session and subscribes it to its events.
func NewHUD(session *systems.Session) *HUD {
	h := &HUD{}
	for i, entry := range session.Fighters() {
		fighter := components.Fighter.Get(entry)
		health := components.Health.Get(entry)
		meter := components.Meter.Get(entry)
		h.names[i] = cfg.DisplayNames[fighter.Character]
		h.meters[i] = systems.HealthMeterEventData{
			Side:      fighter.Side,
			Health:    health.Current,
			MaxHealth: health.Max,
			Super:     meter.Current,
			MaxSuper:  meter.Max,
		}
	}
	h.wins = session.Match().Wins
	h.round = session.Match().Round

	w := session.World()
	systems.HealthMeterEvent.Subscribe(w, h.onHealthMeter)
	systems.WinDotsEvent.Subscribe(w, h.onWinDots)
	systems.AnnouncementEvent.Subscribe(w, h.onAnnouncement)
	return h
}

func (h *HUD) onHealthMeter(_ donburi.World, e systems.HealthMeterEventData) {
	h.meters[e.Side.Index()] = e
}

func (h *HUD) onWinDots(_ donburi.World, e systems.WinDotsEventData) {
	h.wins[e.Side.Index()] = e.Count
}

func (h *HUD) onAnnouncement(_ donburi.World, e systems.AnnouncementEventData) {
	h.round = e.Round
}

func (h *HUD) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	width := float32(cfg.C.Width)
	margin := float32(cfg.UI.BarMargin)
	barW := float32(cfg.UI.HealthBarWidth)
	barH := float32(cfg.UI.HealthBarHeight)
	superH := float32(cfg.UI.SuperBarHeight)
	top := margin

	for i := range h.meters {
		m := h.meters[i]
		left := i == 0

		x := margin
		if !left {
			x = width - margin - barW
		}

		healthFill := barW * ratio(m.Health, m.MaxHealth)
		superFill := barW * ratio(m.Super, m.MaxSuper)

		vector.FillRect(screen, x, top, barW, barH, cfg.UI.HealthBarBg, false)
		vector.FillRect(screen, x, top+barH+4, barW, superH, cfg.Shadow, false)
		if left {
			vector.FillRect(screen, x, top, healthFill, barH, cfg.UI.HealthBarFg, false)
			vector.FillRect(screen, x, top+barH+4, superFill, superH, cfg.UI.SuperBarFg, false)
		} else {
			// Side 2 drains toward the centre
			vector.FillRect(screen, x+barW-healthFill, top, healthFill, barH, cfg.UI.HealthBarFg, false)
			vector.FillRect(screen, x+barW-superFill, top+barH+4, superFill, superH, cfg.UI.SuperBarFg, false)
		}
		vector.StrokeRect(screen, x, top, barW, barH, 2, cfg.White, false)

		name := h.names[i]
		nameX := int(x)
		if !left {
			nameX = int(x+barW) - fonts.TextWidth(face, name)
		}
		text.Draw(screen, name, face, nameX, int(top)-6, cfg.UI.SideColors[i])

		h.drawWinDots(screen, i, x, top+barH+superH+18, barW)
	}

	round := fmt.Sprintf("ROUND %d", h.round)
	text.Draw(screen, round, face, int(width/2)-fonts.TextWidth(face, round)/2, int(top+barH)-4, cfg.White)
}

func (h *HUD) drawWinDots(screen *ebiten.Image, side int, barX, y, barW float32) {
	r := float32(cfg.UI.WinDotRadius)
	for dot := 0; dot < cfg.Match.WinsRequired; dot++ {
		offset := r + float32(dot)*(r*3)
		cx := barX + offset
		if side == 1 {
			cx = barX + barW - offset
		}
		if h.wins[side] > dot {
			vector.FillCircle(screen, cx, y, r, cfg.Gold, true)
		}
		vector.StrokeCircle(screen, cx, y, r, 2, cfg.White, true)
	}
}

func ratio(current, total int) float32 {
	if total <= 0 || current <= 0 {
		return 0
	}
	if current >= total {
		return 1
	}
	return float32(current) / float32(total)
}
