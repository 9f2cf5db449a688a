package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// MeterData is the super meter, filled by landing and blocking hits.
type MeterData struct {
	Current int
	Max     int
}

// Add raises the meter, capped at Max.
func (m *MeterData) Add(amount int) {
	m.Current += amount
	if m.Current > m.Max {
		m.Current = m.Max
	}
}

var Health = donburi.NewComponentType[HealthData]()
var Meter = donburi.NewComponentType[MeterData]()
