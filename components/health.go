package components

import "github.com/yohamta/donburi"

// HealthData is shared by combatants and blocks. Current stays within [0, Max].
type HealthData struct {
	Current float64
	Max     float64
}

// Ratio returns Current/Max, 0 for a zero Max.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
