package systems

import (
	"testing"

	"github.com/automoto/bancho-vs/components"
	cfg "github.com/automoto/bancho-vs/config"
	"github.com/automoto/bancho-vs/systems/factory"
	"github.com/yohamta/donburi"
)

// newArena builds a world with a collision space and two grounded fighters.
func newArena(t *testing.T, p1X, p2X float64) (donburi.World, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateSpace(w)
	p1 := factory.CreateFighter(w, cfg.SideOne, cfg.Bancho, p1X)
	p2 := factory.CreateFighter(w, cfg.SideTwo, cfg.BattingGirl, p2X)
	return w, p1, p2
}

// step advances both fighters once, side 1 first.
func step(w donburi.World, p1, p2 *donburi.Entry) {
	UpdateFighter(w, p1, p2)
	UpdateFighter(w, p2, p1)
}

// attackUntilContact advances p1 until its attack lands on p2 and returns
// right after p1's update, before p2 runs its own timers.
func attackUntilContact(t *testing.T, w donburi.World, p1, p2 *donburi.Entry, maxTicks int) {
	t.Helper()
	startHealth := components.Health.Get(p2).Current
	startStun := components.MeleeAttack.Get(p2).BlockStun
	for i := 0; i < maxTicks; i++ {
		UpdateFighter(w, p1, p2)
		if components.Health.Get(p2).Current != startHealth ||
			components.MeleeAttack.Get(p2).BlockStun != startStun {
			return
		}
		UpdateFighter(w, p2, p1)
	}
	t.Fatalf("attack did not connect within %d ticks", maxTicks)
}

func controls(actions ...cfg.ActionID) components.ControlState {
	var c components.ControlState
	for _, a := range actions {
		c[a] = true
	}
	return c
}
