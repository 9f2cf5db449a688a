package config

import (
	"image/color"
	"time"
)

// ArenaConfig describes the playable stage.
type ArenaConfig struct {
	Width   float64
	Height  float64
	GroundY float64 // Top edge of a standing fighter's body
	Margin  float64 // Horizontal inset applied to both edges

	// Collision space cell size
	CellWidth  int
	CellHeight int
}

// FighterConfig contains values shared by every fighter.
type FighterConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Movement
	Speed         float64
	JumpPower     float64
	StopFriction  float64 // Multiplier applied to SpeedX when no direction is held
	StopThreshold float64 // Speed below which a stopping fighter snaps to 0
	WalkThreshold float64 // |SpeedX| above which the fighter is walking

	// Resources
	MaxHealth int
	MaxSuper  int

	// Start positions by side index
	StartX [2]float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64
}

// AttackConfig holds the fixed values for one attack index.
type AttackConfig struct {
	Damage   int
	Reach    float64 // Attack box width
	Cooldown int     // frames
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Attack box placement relative to the body
	HitboxOffsetY float64
	HitboxHeight  float64

	// Blocking
	BlockDamageRatio float64
	BlockStunFrames  int
	BlockPushback    float64
	BlockMeterGain   int

	// Clean hits
	Knockback      float64
	LauncherAttack int     // Attack index that also lifts the target
	LauncherLift   float64 // Vertical velocity applied by the launcher
	HitMeterGain   int

	// Hit reaction
	HitCooldownFrames int

	// Combo
	ComboWindowFrames int
}

// MatchConfig contains the round/match timing values.
type MatchConfig struct {
	WinsRequired     int
	RoundIntroDelay  time.Duration // ROUND n shown before FIGHT!
	FightCueDuration time.Duration // FIGHT! shown before it is cleared
	RoundEndDelay    time.Duration // Winner shown before the next round starts
	ChampionDelay    time.Duration // Winner shown before the champion announcement
}

// UIConfig contains HUD and debug-draw values.
type UIConfig struct {
	// Bars
	HealthBarWidth  float64
	HealthBarHeight float64
	SuperBarHeight  float64
	BarMargin       float64
	WinDotRadius    float64

	// Screen Y of the floor line. Bodies are drawn shifted so a grounded
	// fighter stands on it.
	FloorY float64

	// Popups (frames)
	HitPopupFrames   int
	ComboPopupFrames int
	PopupRise        float64

	// Announcement tween (seconds)
	AnnouncementFadeIn float32

	// Colors
	BackgroundTop    color.RGBA
	Floor            color.RGBA
	HealthBarBg      color.RGBA
	HealthBarFg      color.RGBA
	SuperBarFg       color.RGBA
	HitboxColor      color.RGBA
	SideColors       [2]color.RGBA
	AnnouncementText color.RGBA
	PauseOverlay     color.RGBA

	// Font sizes
	HUDFontSize          float64
	AnnouncementFontSize float64
	PopupFontSize        float64
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TickRate int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBoxes bool // Draw body and attack boxes
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Fighter FighterConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Attacks map[int]AttackConfig
var Match MatchConfig
var UI UIConfig
var Debug DebugConfig

// AttackFor returns the attack values for a 1-based attack index.
func AttackFor(index int) (AttackConfig, bool) {
	a, ok := Attacks[index]
	return a, ok
}

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold      = color.RGBA{R: 255, G: 204, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGray  = color.RGBA{R: 44, G: 44, B: 44, A: 255}
	SkyBlue   = color.RGBA{R: 30, G: 60, B: 114, A: 255}
	Shadow    = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:    1200,
		Height:   600,
		TickRate: 60,
	}

	Arena = ArenaConfig{
		Width:      1200,
		Height:     600,
		GroundY:    450,
		Margin:     50,
		CellWidth:  16,
		CellHeight: 16,
	}

	Fighter = FighterConfig{
		Width:         80,
		Height:        200,
		Speed:         6,
		JumpPower:     18,
		StopFriction:  0.8,
		StopThreshold: 0.1,
		WalkThreshold: 0.5,
		MaxHealth:     100,
		MaxSuper:      100,
		StartX:        [2]float64{200, 1200 - 280},
	}

	Physics = PhysicsConfig{
		Gravity: 0.8,
	}

	Attacks = map[int]AttackConfig{
		1: {Damage: 5, Reach: 60, Cooldown: 20},
		2: {Damage: 8, Reach: 70, Cooldown: 25},
		3: {Damage: 12, Reach: 80, Cooldown: 30},
	}

	Combat = CombatConfig{
		HitboxOffsetY: 80,
		HitboxHeight:  60,

		BlockDamageRatio: 0.2,
		BlockStunFrames:  15,
		BlockPushback:    2,
		BlockMeterGain:   5,

		Knockback:      8,
		LauncherAttack: 3,
		LauncherLift:   -8,
		HitMeterGain:   10,

		HitCooldownFrames: 30,
		ComboWindowFrames: 60,
	}

	Match = MatchConfig{
		WinsRequired:     2,
		RoundIntroDelay:  1500 * time.Millisecond,
		FightCueDuration: 500 * time.Millisecond,
		RoundEndDelay:    2000 * time.Millisecond,
		ChampionDelay:    2000 * time.Millisecond,
	}

	UI = UIConfig{
		HealthBarWidth:  400,
		HealthBarHeight: 24,
		SuperBarHeight:  8,
		BarMargin:       30,
		WinDotRadius:    7,

		FloorY: 560,

		HitPopupFrames:   60,
		ComboPopupFrames: 90,
		PopupRise:        0.8,

		AnnouncementFadeIn: 0.25,

		BackgroundTop:    SkyBlue,
		Floor:            DarkGray,
		HealthBarBg:      color.RGBA{R: 60, G: 0, B: 0, A: 255},
		HealthBarFg:      Gold,
		SuperBarFg:       LightBlue,
		HitboxColor:      color.RGBA{R: 255, G: 255, B: 0, A: 120},
		SideColors:       [2]color.RGBA{Blue, Red},
		AnnouncementText: White,
		PauseOverlay:     color.RGBA{R: 0, G: 0, B: 0, A: 150},

		HUDFontSize:          16,
		AnnouncementFontSize: 48,
		PopupFontSize:        24,
	}
}
