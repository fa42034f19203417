package components

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/krool/slingsquad/config"
	"github.com/yohamta/donburi"
)

// BattleData is the per-battle context shared by every system.
type BattleData struct {
	ID        uuid.UUID
	Modifiers config.ModifierSet
	Rand      *rand.Rand
	GroundY   float64 // used by the built-in body integrator
}

// ClockData tracks frame time and the fixed combat tick.
type ClockData struct {
	Tick        uint64
	Elapsed     float64 // seconds since the battle started
	Accumulator float64 // seconds not yet consumed by ticks
	Delta       float64 // seconds of the current frame
}

// LauncherData gates launches.
type LauncherData struct {
	CooldownUntil float64 // Elapsed value at which the next launch is allowed
	LaunchCount   int
}

// ChainTask detonates Barrel when the scheduler reaches DueTick.
type ChainTask struct {
	DueTick uint64
	Barrel  donburi.Entity
}

// SchedulerData is the deferred task queue drained once per tick.
type SchedulerData struct {
	Tasks []ChainTask
}

var (
	Battle    = donburi.NewComponentType[BattleData]()
	Clock     = donburi.NewComponentType[ClockData]()
	Launcher  = donburi.NewComponentType[LauncherData]()
	Scheduler = donburi.NewComponentType[SchedulerData]()
)

// TallyData counts outcomes of entities that leave the world.
type TallyData struct {
	EnemiesKilled   int
	HeroesLost      int
	BlocksDestroyed int
	BarrelsExploded int
}

var Tally = donburi.NewComponentType[TallyData]()
