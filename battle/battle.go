// Package battle wires the combat systems into a single battle and is the
// entry point for hosts: a renderer, the headless simulator or the spectator
// server. It owns the donburi world, runs the systems once per frame and
// delivers the queued events after every call that can emit them.
package battle

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/events"
	"github.com/krool/slingsquad/systems"
	"github.com/krool/slingsquad/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Outcome is the state of a battle as seen from the hero side.
type Outcome int

const (
	Ongoing Outcome = iota
	Victory
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	}
	return "ongoing"
}

type options struct {
	seed           int64
	seeded         bool
	builtinPhysics bool
	width, height  int
}

// Option configures New.
type Option func(*options)

// WithSeed fixes the random source used for crit rolls.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithBuiltinPhysics runs the stand-in body integrator, which moves bodies
// and reports contacts by itself. Without it the host's physics engine moves
// bodies and reports contacts through Collide.
func WithBuiltinPhysics() Option {
	return func(o *options) {
		o.builtinPhysics = true
	}
}

// WithWorldSize overrides the collision space dimensions.
func WithWorldSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// Battle is one running battle.
type Battle struct {
	id  uuid.UUID
	ecs *ecs.ECS
}

// New creates an empty battle. Populate it with LoadScene or with the
// systems/factory constructors on ECS.
func New(mods cfg.ModifierSet, opts ...Option) (*Battle, error) {
	if err := mods.Validate(); err != nil {
		return nil, fmt.Errorf("invalid modifiers: %w", err)
	}

	o := options{width: cfg.World.Width, height: cfg.World.Height}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("invalid world size %dx%d", o.width, o.height)
	}

	ecs := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(ecs, o.width, o.height, cfg.World.CellWidth, cfg.World.CellHeight)

	id := uuid.New()
	factory.CreateBattle(ecs, id, mods, o.seed)

	ecs.AddSystem(systems.UpdateDespawns)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateClock)
	if o.builtinPhysics {
		ecs.AddSystem(systems.UpdateBodies)
	}
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateHeroWalk)
	ecs.AddSystem(systems.UpdateRushers)

	log.Printf("[battle %s] created (seed %d, physics builtin=%v)", id, o.seed, o.builtinPhysics)
	return &Battle{id: id, ecs: ecs}, nil
}

// ID returns the battle id used in logs and report keys.
func (b *Battle) ID() uuid.UUID {
	return b.id
}

// ECS exposes the systems runner, mainly for factories and tests.
func (b *Battle) ECS() *ecs.ECS {
	return b.ecs
}

// World exposes the underlying donburi world.
func (b *Battle) World() donburi.World {
	return b.ecs.World
}

// Update advances the battle by dt seconds and delivers the events raised
// during the frame.
func (b *Battle) Update(dt float64) {
	if e, ok := components.Clock.First(b.ecs.World); ok {
		components.Clock.Get(e).Delta = dt
	}
	b.ecs.Update()
	events.Flush(b.ecs.World)
}

// Tick returns the number of combat ticks resolved so far.
func (b *Battle) Tick() uint64 {
	if e, ok := components.Clock.First(b.ecs.World); ok {
		return components.Clock.Get(e).Tick
	}
	return 0
}

// Elapsed returns the battle time in seconds.
func (b *Battle) Elapsed() float64 {
	if e, ok := components.Clock.First(b.ecs.World); ok {
		return components.Clock.Get(e).Elapsed
	}
	return 0
}

// Launch fires the next queued hero. It returns false while the launch
// cooldown runs or when every hero has been launched.
func (b *Battle) Launch(aim systems.LaunchAim) (donburi.Entity, bool) {
	hero, ok := systems.Launch(b.ecs, aim)
	events.Flush(b.ecs.World)
	if !ok {
		return donburi.Null, false
	}
	return hero.Entity(), true
}

// Collide is the contact callback for an external physics engine. Either
// entity may be donburi.Null for static geometry.
func (b *Battle) Collide(a, bEntity donburi.Entity, impactForce float64) {
	systems.HandleCollision(b.ecs, b.entry(a), b.entry(bEntity), impactForce)
	events.Flush(b.ecs.World)
}

func (b *Battle) entry(entity donburi.Entity) *donburi.Entry {
	if entity == donburi.Null || !b.ecs.World.Valid(entity) {
		return nil
	}
	return b.ecs.World.Entry(entity)
}

// AllLaunched reports whether every queued hero has left the slingshot.
func (b *Battle) AllLaunched() bool {
	return systems.AllLaunched(b.ecs)
}

// HeroesInFlight counts launched heroes that have not landed yet.
func (b *Battle) HeroesInFlight() int {
	return systems.HeroesInFlight(b.ecs)
}

// Alive returns the living heroes and enemies.
func (b *Battle) Alive() (heroes, enemies int) {
	return systems.CountAlive(b.ecs)
}

// Outcome reports victory once every enemy has been killed and defeat once
// every hero has fallen. A side that never had a casualty cannot lose, so an
// empty or half-loaded battle stays ongoing.
func (b *Battle) Outcome() Outcome {
	var tally components.TallyData
	if e, ok := components.Tally.First(b.ecs.World); ok {
		tally = *components.Tally.Get(e)
	}
	heroes, enemies := b.Alive()
	switch {
	case enemies == 0 && tally.EnemiesKilled > 0:
		return Victory
	case heroes == 0 && tally.HeroesLost > 0:
		return Defeat
	}
	return Ongoing
}

// Report builds the post-battle accounting.
func (b *Battle) Report() *systems.BattleReport {
	return systems.BuildBattleReport(b.ecs)
}

// SaveReport stores the current report in the persistence store.
func (b *Battle) SaveReport() error {
	report := b.Report()
	if err := systems.SaveBattleReport(report); err != nil {
		return fmt.Errorf("battle %s: %w", b.id, err)
	}
	log.Printf("[battle %s] report saved: %d enemies killed, %d heroes lost", b.id, report.EnemiesKilled, report.HeroesLost)
	return nil
}
