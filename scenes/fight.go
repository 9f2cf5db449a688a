package scenes

import (
	"sync"

	cfg "github.com/automoto/bancho-vs/config"
	"github.com/automoto/bancho-vs/systems"
	"github.com/automoto/bancho-vs/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SettingsSaver persists the client settings.
type SettingsSaver interface {
	Save(settings cfg.Settings) error
}

// FightScene runs one session at a time and draws it. Pressing R after the
// match is decided starts a fresh session with the same characters. Escape
// pauses; the session is not ticked while paused.
type FightScene struct {
	ecs      *ecs.ECS
	session  *systems.Session
	settings cfg.Settings
	store    SettingsSaver
	logger   *zap.Logger
	once     sync.Once
}

// NewFightScene creates the scene. store may be nil.
func NewFightScene(settings cfg.Settings, store SettingsSaver, logger *zap.Logger) *FightScene {
	return &FightScene{
		settings: settings,
		store:    store,
		logger:   logger,
	}
}

func (fs *FightScene) Update() {
	fs.once.Do(fs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		fs.toggleBoxes()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		paused := ui.TogglePause(fs.session.World())
		fs.logger.Debug("pause toggled", zap.Bool("paused", paused))
	}
	if ui.IsPaused(fs.session.World()) {
		fs.ecs.Update()
		return
	}

	match := fs.session.Match()
	if match.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		fs.session.Close()
		fs.configure()
		return
	}

	fs.session.Tick(PollControls())
	fs.ecs.Update()
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	if fs.ecs == nil {
		screen.Fill(cfg.UI.BackgroundTop)
		return
	}
	fs.ecs.Draw(screen)
}

// Close ends the running session.
func (fs *FightScene) Close() {
	if fs.session != nil {
		fs.session.Close()
	}
}

func (fs *FightScene) configure() {
	fs.session = systems.NewSession(
		systems.WithLogger(fs.logger),
		systems.WithCharacters(fs.settings.P1Character, fs.settings.P2Character),
	)

	hud := ui.NewHUD(fs.session)
	effects := ui.NewEffects(fs.session)

	e := ecs.NewECS(fs.session.World())
	e.AddSystem(ui.WithPauseCheck(effects.Update))

	e.AddRenderer(ui.LayerArena, ui.DrawArena)
	e.AddRenderer(ui.LayerFighters, ui.DrawFighters)
	e.AddRenderer(ui.LayerFighters, ui.DrawHitboxes)
	e.AddRenderer(ui.LayerHUD, hud.Draw)
	e.AddRenderer(ui.LayerEffects, effects.Draw)
	e.AddRenderer(ui.LayerEffects, ui.DrawPause)

	fs.ecs = e
}

func (fs *FightScene) toggleBoxes() {
	cfg.Debug.ShowBoxes = !cfg.Debug.ShowBoxes
	fs.settings.ShowBoxes = cfg.Debug.ShowBoxes
	if fs.store == nil {
		return
	}
	if err := fs.store.Save(fs.settings); err != nil {
		fs.logger.Warn("could not save settings", zap.Error(err))
	}
}
