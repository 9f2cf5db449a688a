package components

import "github.com/yohamta/donburi"

// PauseData is the client's pause flag. While set, the session is not ticked.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
