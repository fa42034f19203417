package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ecs layer; the core has no renderers.
const Default ecs.LayerID = iota

// StateID identifies a combatant's combat state.
type StateID int

const (
	StateIdle StateID = iota
	StateFlying
	StateActive
	StateRushing
	StateDead
)

var stateNames = map[StateID]string{
	StateIdle:    "idle",
	StateFlying:  "flying",
	StateActive:  "active",
	StateRushing: "rushing",
	StateDead:    "dead",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Faction separates the two sides of a battle.
type Faction int

const (
	FactionHero Faction = iota
	FactionEnemy
)

// Material drives block damage multipliers and modifier categories.
type Material int

const (
	Wood Material = iota
	Stone
	Ice
	Metal
)

// ParseMaterial maps a level-file material name to a Material.
func ParseMaterial(name string) (Material, bool) {
	for m, c := range Materials {
		if c.Name == name {
			return m, true
		}
	}
	return Wood, false
}

// TargetKind tells the presentation layer what was hit.
type TargetKind int

const (
	TargetHero TargetKind = iota
	TargetEnemy
	TargetBlock
	TargetBarrel
)

// StatusKind enumerates status and support effects reported outward.
type StatusKind int

const (
	StatusCharm StatusKind = iota
	StatusSlow
	StatusPoison
	StatusHeal
	StatusRevive
)
