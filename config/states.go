package config

// StateID identifies a fighter's action state. It doubles as the key into
// the per-character animation tables.
type StateID int

// MatchStateID represents the current phase of the round/match controller.
type MatchStateID int

const (
	MatchStatePreRound   MatchStateID = iota // Round announcement, intents disabled
	MatchStateActive                         // Fighting
	MatchStateRoundEnded                     // A fighter went down, next round pending
	MatchStateMatchOver                      // A side reached the required wins
)

// StateNone marks the absence of a state, e.g. an unknown attack index.
const StateNone StateID = -1

const (
	Idle StateID = iota
	Walk
	WalkBack
	Jump
	Attack1
	Attack2
	Attack3
	Hurt
	Block
)

// AttackState returns the action state for a 1-based attack index.
func AttackState(index int) StateID {
	switch index {
	case 1:
		return Attack1
	case 2:
		return Attack2
	case 3:
		return Attack3
	}
	return StateNone
}

// StateNames maps StateID to the name used by animation sheets and debug output.
var StateNames = map[StateID]string{
	Idle:     "idle",
	Walk:     "walk",
	WalkBack: "walkBack",
	Jump:     "jump",
	Attack1:  "attack1",
	Attack2:  "attack2",
	Attack3:  "attack3",
	Hurt:     "hurt",
	Block:    "block",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}

var matchStateNames = map[MatchStateID]string{
	MatchStatePreRound:   "pre-round",
	MatchStateActive:     "active",
	MatchStateRoundEnded: "round-ended",
	MatchStateMatchOver:  "match-over",
}

func (m MatchStateID) String() string {
	if name, ok := matchStateNames[m]; ok {
		return name
	}
	return "unknown"
}

// Side identifies one of the two players.
type Side int

const (
	SideNone Side = 0
	SideOne  Side = 1
	SideTwo  Side = 2
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideOne {
		return SideTwo
	}
	return SideOne
}

// Index returns the zero-based slot for per-side arrays.
func (s Side) Index() int {
	return int(s) - 1
}
