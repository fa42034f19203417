package systems

import (
	"testing"

	"github.com/google/uuid"
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/events"
	"github.com/krool/slingsquad/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	devents "github.com/yohamta/donburi/features/events"
)

// newTestECS returns a battle world with a space and a seeded battle context.
func newTestECS(t *testing.T, mods cfg.ModifierSet) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.World.Width, cfg.World.Height, cfg.World.CellWidth, cfg.World.CellHeight)
	factory.CreateBattle(e, uuid.New(), mods, 12345)
	return e
}

// spawnHero places a hero centred on (cx, cy) in the given state.
func spawnHero(e *ecs.ECS, class cfg.HeroClass, cx, cy float64, state cfg.StateID) *donburi.Entry {
	conf := cfg.Heroes.Types[class]
	hero := factory.CreateHero(e, class, cx-conf.Width/2, cy-conf.Height/2, 0)
	components.Combatant.Get(hero).State = state
	if state != cfg.StateIdle {
		components.Hero.Get(hero).Launched = true
	}
	return hero
}

func spawnEnemy(e *ecs.ECS, class cfg.EnemyClass, cx, cy float64, state cfg.StateID) *donburi.Entry {
	conf := cfg.Enemies.Types[class]
	enemy := factory.CreateEnemy(e, class, cx-conf.Width/2, cy-conf.Height/2)
	components.Combatant.Get(enemy).State = state
	return enemy
}

func spawnBlock(e *ecs.ECS, mat cfg.Material, cx, cy, w, h float64) *donburi.Entry {
	return factory.CreateBlock(e, mat, cx-w/2, cy-h/2, w, h)
}

func spawnBarrel(e *ecs.ECS, cx, cy, radius, damage float64) *donburi.Entry {
	return factory.CreateBarrel(e, cx-8, cy-10, 16, 20, radius, damage)
}

// collect records every event of one type delivered by events.Flush.
func collect[T any](w donburi.World, et *devents.EventType[T]) *[]T {
	got := &[]T{}
	et.Subscribe(w, func(_ donburi.World, ev T) {
		*got = append(*got, ev)
	})
	return got
}

func health(e *donburi.Entry) float64 {
	return components.Health.Get(e).Current
}

func tick(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		AdvanceTick(e)
	}
	events.Flush(e.World)
}

func factoryAllyBlock(e *ecs.ECS, cx, cy float64) *donburi.Entry {
	return factory.CreateAllyBlock(e, cx-12, cy-12, 24, 60, 1000)
}
