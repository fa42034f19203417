// Package events holds the notifications the combat core emits for the
// presentation and orchestration layers. They are queued on the world and
// delivered when the frame driver processes events.
package events

import (
	"github.com/krool/slingsquad/config"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// DamageApplied is emitted for every non-zero health change caused by damage.
type DamageApplied struct {
	Target donburi.Entity
	Source donburi.Entity
	Kind   config.TargetKind
	X, Y   float64
	Amount float64
	Crit   bool
}

// Explosion is emitted once per resolved blast.
type Explosion struct {
	Source donburi.Entity
	X, Y   float64
	Radius float64
	Damage float64
}

// StatusApplied covers charm, slow, poison, heal and revive.
type StatusApplied struct {
	Target donburi.Entity
	Source donburi.Entity
	Kind   config.StatusKind
	X, Y   float64
	Amount float64 // healed amount, slow factor or poison per pulse
	Ticks  uint64
}

// EntityDied is emitted when a combatant enters the dead state.
type EntityDied struct {
	Entity  donburi.Entity
	Killer  donburi.Entity // donburi.Null for self-detonation or unknown
	Faction config.Faction
	Class   string
	X, Y    float64
}

// Destroyed is emitted for blocks and barrels.
type Destroyed struct {
	Entity donburi.Entity
	Kind   config.TargetKind
	X, Y   float64
}

// Launched is emitted when a hero leaves the slingshot.
type Launched struct {
	Hero       donburi.Entity
	Class      config.HeroClass
	QueueIndex int
	VelX, VelY float64
}

var (
	DamageAppliedEvent = devents.NewEventType[DamageApplied]()
	ExplosionEvent     = devents.NewEventType[Explosion]()
	StatusAppliedEvent = devents.NewEventType[StatusApplied]()
	EntityDiedEvent    = devents.NewEventType[EntityDied]()
	DestroyedEvent     = devents.NewEventType[Destroyed]()
	LaunchedEvent      = devents.NewEventType[Launched]()
)

// Flush delivers every queued event to its subscribers.
func Flush(w donburi.World) {
	devents.ProcessAllEvents(w)
}
