package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/bancho-vs/config"
	"github.com/automoto/bancho-vs/fonts"
	"github.com/automoto/bancho-vs/scenes"
	"github.com/automoto/bancho-vs/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) (*Game, error) {
	err := errors.Join(
		fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, config.UI.HUDFontSize),
		fonts.LoadFontWithSize(fonts.Announcement, gobold.TTF, config.UI.AnnouncementFontSize),
		fonts.LoadFontWithSize(fonts.Popup, gobold.TTF, config.UI.PopupFontSize),
	)
	if err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func newLogger(debug bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Printf("Warning: Could not build logger: %v", err)
		return zap.NewNop()
	}
	return logger
}

func main() {
	p1 := flag.String("p1", "", "Side 1 character (bancho, battingGirl, bruteArms)")
	p2 := flag.String("p2", "", "Side 2 character (bancho, battingGirl, bruteArms)")
	debug := flag.Bool("debug", false, "Verbose logging and body/attack box overlay")
	flag.Parse()

	logger := newLogger(*debug)
	defer func() { _ = logger.Sync() }()

	settings := config.DefaultSettings()
	store, err := systems.OpenSettingsStore("bancho-vs")
	if err != nil {
		logger.Warn("settings unavailable, using defaults", zap.Error(err))
	} else if saved, err := store.Load(); err != nil {
		logger.Warn("could not load settings", zap.Error(err))
	} else {
		settings = saved
	}

	// Flags override the saved picks
	if *p1 != "" {
		if id, err := config.ParseCharacter(*p1); err != nil {
			logger.Warn("ignoring -p1", zap.Error(err))
		} else {
			settings.P1Character = id
		}
	}
	if *p2 != "" {
		if id, err := config.ParseCharacter(*p2); err != nil {
			logger.Warn("ignoring -p2", zap.Error(err))
		} else {
			settings.P2Character = id
		}
	}
	config.Debug.ShowBoxes = settings.ShowBoxes || *debug

	var saver scenes.SettingsSaver
	if store != nil {
		saver = store
		if err := store.Save(settings); err != nil {
			logger.Warn("could not save settings", zap.Error(err))
		}
	}

	scene := scenes.NewFightScene(settings, saver, logger)
	defer scene.Close()

	game, err := NewGame(scene)
	if err != nil {
		logger.Fatal("could not load fonts", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Bancho VS")
	ebiten.SetTPS(config.C.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited", zap.Error(err))
	}
}
