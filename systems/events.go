package systems

import (
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi/features/events"
)

// HitEventData describes an attack box connecting with the opponent. X and Y
// locate the hit marker above the target.
type HitEventData struct {
	Attacker cfg.Side
	Target   cfg.Side
	Attack   int
	Damage   int
	Blocked  bool
	X, Y     float64
}

type ComboEventData struct {
	Side  cfg.Side
	Count int
}

// AnnouncementEventData carries the centre-screen text. An empty Text hides it.
type AnnouncementEventData struct {
	Text  string
	Round int
}

type WinDotsEventData struct {
	Side  cfg.Side
	Count int
}

type HealthMeterEventData struct {
	Side      cfg.Side
	Health    int
	MaxHealth int
	Super     int
	MaxSuper  int
}

// FighterDownEventData is published when a fighter's health reaches zero.
type FighterDownEventData struct {
	Side cfg.Side
}

var (
	HitEvent          = events.NewEventType[HitEventData]()
	ComboEvent        = events.NewEventType[ComboEventData]()
	AnnouncementEvent = events.NewEventType[AnnouncementEventData]()
	WinDotsEvent      = events.NewEventType[WinDotsEventData]()
	HealthMeterEvent  = events.NewEventType[HealthMeterEventData]()
	FighterDownEvent  = events.NewEventType[FighterDownEventData]()
)
