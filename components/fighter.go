package components

import (
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi"
)

type FighterData struct {
	Side        cfg.Side
	Character   cfg.CharacterID
	FacingRight bool
	Speed       float64
	JumpPower   float64
	IsHurt      bool
	Dead        bool
}

var Fighter = donburi.NewComponentType[FighterData]()
