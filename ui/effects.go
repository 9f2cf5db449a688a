package ui

import (
	"fmt"
	"image/color"
	"strconv"

	cfg "github.com/automoto/bancho-vs/config"
	"github.com/automoto/bancho-vs/fonts"
	"github.com/automoto/bancho-vs/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Combo callout placement in screen pixels.
const (
	comboInset = 200
	comboY     = 200
)

// popup is a short-lived text that drifts upward and fades out. x is the
// horizontal centre and y the baseline, both in screen pixels.
type popup struct {
	text  string
	x, y  float64
	color color.RGBA
	face  font.Face
	rise  *gween.Tween
	fade  *gween.Tween
	dy    float32
	alpha float32
	done  bool
}

func newPopup(s string, x, y float64, clr color.RGBA, face font.Face, frames int) *popup {
	seconds := float32(frames) / float32(cfg.C.TickRate)
	distance := float32(cfg.UI.PopupRise) * float32(frames)
	return &popup{
		text:  s,
		x:     x,
		y:     y,
		color: clr,
		face:  face,
		rise:  gween.New(0, -distance, seconds, ease.OutQuad),
		fade:  gween.New(1, 0, seconds, ease.InQuad),
		alpha: 1,
	}
}

func (p *popup) update(dt float32) {
	p.dy, _ = p.rise.Update(dt)
	var finished bool
	p.alpha, finished = p.fade.Update(dt)
	p.done = finished
}

// Effects draws hit markers, combo callouts and the centre announcement.
type Effects struct {
	popups []*popup

	announcement      string
	announcementScale *gween.Tween
	announcementFade  *gween.Tween
	scale             float32
	alpha             float32
}

// NewEffects subscribes an effects layer to the session's events.
func NewEffects(session *systems.Session) *Effects {
	fx := &Effects{scale: 1, alpha: 1}
	w := session.World()
	systems.HitEvent.Subscribe(w, fx.onHit)
	systems.ComboEvent.Subscribe(w, fx.onCombo)
	systems.AnnouncementEvent.Subscribe(w, fx.onAnnouncement)
	fx.onAnnouncement(w, systems.AnnouncementEventData{Text: session.Match().Announcement})
	return fx
}

func (fx *Effects) onHit(_ donburi.World, e systems.HitEventData) {
	label := strconv.Itoa(e.Damage)
	clr := cfg.Yellow
	if e.Blocked {
		label = "BLOCKED"
		clr = cfg.LightBlue
	}
	y := float64(screenY(e.Y))
	fx.popups = append(fx.popups, newPopup(label, e.X, y, clr, fonts.Popup.Get(), cfg.UI.HitPopupFrames))
}

func (fx *Effects) onCombo(_ donburi.World, e systems.ComboEventData) {
	face := fonts.Popup.Get()
	label := fmt.Sprintf("%d HIT COMBO!", e.Count)

	// Callouts sit on the attacker's half of the screen
	half := float64(fonts.TextWidth(face, label)) / 2
	x := comboInset + half
	if e.Side == cfg.SideTwo {
		x = float64(cfg.C.Width) - comboInset - half
	}
	fx.popups = append(fx.popups, newPopup(label, x, comboY, cfg.Gold, face, cfg.UI.ComboPopupFrames))
}

func (fx *Effects) onAnnouncement(_ donburi.World, e systems.AnnouncementEventData) {
	fx.announcement = e.Text
	if e.Text == "" {
		return
	}
	fx.announcementScale = gween.New(1.6, 1, cfg.UI.AnnouncementFadeIn, ease.OutBack)
	fx.announcementFade = gween.New(0, 1, cfg.UI.AnnouncementFadeIn, ease.Linear)
	fx.scale = 1.6
	fx.alpha = 0
}

// Update advances every tween by one tick.
func (fx *Effects) Update(_ *ecs.ECS) {
	dt := 1 / float32(cfg.C.TickRate)

	live := fx.popups[:0]
	for _, p := range fx.popups {
		p.update(dt)
		if !p.done {
			live = append(live, p)
		}
	}
	fx.popups = live

	if fx.announcementScale != nil {
		fx.scale, _ = fx.announcementScale.Update(dt)
		fx.alpha, _ = fx.announcementFade.Update(dt)
	}
}

func (fx *Effects) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	for _, p := range fx.popups {
		x := p.x - float64(fonts.TextWidth(p.face, p.text))/2
		y := p.y + float64(p.dy)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(p.color)
		op.ColorScale.ScaleAlpha(p.alpha)
		text.DrawWithOptions(screen, p.text, p.face, op)
	}

	if fx.announcement == "" {
		return
	}
	face := fonts.Announcement.Get()
	width := float64(fonts.TextWidth(face, fx.announcement))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-width/2, 0)
	op.GeoM.Scale(float64(fx.scale), float64(fx.scale))
	op.GeoM.Translate(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)
	op.ColorScale.ScaleWithColor(cfg.UI.AnnouncementText)
	op.ColorScale.ScaleAlpha(fx.alpha)
	text.DrawWithOptions(screen, fx.announcement, face, op)
}
