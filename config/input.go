package config

// ActionID represents a virtual button in a side's control snapshot.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionBlock
	ActionAttack1
	ActionAttack2
	ActionAttack3
	ActionCount // Must be last - used for array sizing
)

// AttackActions lists the attack buttons in priority order; when several are
// held in the same tick only the first is used.
var AttackActions = [3]ActionID{ActionAttack1, ActionAttack2, ActionAttack3}

var actionNames = map[ActionID]string{
	ActionMoveLeft:  "moveLeft",
	ActionMoveRight: "moveRight",
	ActionJump:      "jump",
	ActionBlock:     "block",
	ActionAttack1:   "attack1",
	ActionAttack2:   "attack2",
	ActionAttack3:   "attack3",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
