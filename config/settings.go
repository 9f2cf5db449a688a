package config

// Settings holds the client preferences persisted between runs.
type Settings struct {
	P1Character CharacterID `json:"p1Character"`
	P2Character CharacterID `json:"p2Character"`
	ShowBoxes   bool        `json:"showBoxes"`
}

// DefaultSettings returns the selection used on first launch.
func DefaultSettings() Settings {
	return Settings{
		P1Character: Bancho,
		P2Character: BattingGirl,
	}
}
