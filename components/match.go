package components

import (
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and round wins.
// This is a singleton component - only one match exists per session.
type MatchData struct {
	State        cfg.MatchStateID
	Round        int
	Wins         [2]int // indexed by Side.Index()
	RoundActive  bool   // intents are processed only while true
	GameOver     bool
	Champion     cfg.Side
	RoundWinner  cfg.Side
	Announcement string // empty when hidden
}

// WinsFor returns the round wins credited to side.
func (m *MatchData) WinsFor(side cfg.Side) int {
	return m.Wins[side.Index()]
}

// AddWin credits side with a round and returns the new count.
func (m *MatchData) AddWin(side cfg.Side) int {
	m.Wins[side.Index()]++
	return m.Wins[side.Index()]
}

var Match = donburi.NewComponentType[MatchData]()
