package components

import (
	"github.com/krool/slingsquad/config"
	"github.com/yohamta/donburi"
)

// CombatantData is the capability shared by heroes and enemies.
type CombatantData struct {
	Faction config.Faction
	State   config.StateID
}

// Alive reports whether the combatant can still act or be hit.
func (c *CombatantData) Alive() bool {
	return c.State != config.StateDead
}

// AttackData holds per-class attack stats and the tick cooldown.
type AttackData struct {
	Damage   float64
	Range    float64
	Interval float64 // seconds
	NextTick uint64  // first tick the next attack may happen
}

// StatsData is per-battle accounting, used only for reporting.
type StatsData struct {
	DamageDealt float64
	DamageTaken float64
	Healing     float64
	Kills       int
}

var (
	Combatant = donburi.NewComponentType[CombatantData]()
	Attack    = donburi.NewComponentType[AttackData]()
	Stats     = donburi.NewComponentType[StatsData]()
)
