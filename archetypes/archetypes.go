package archetypes

import (
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Hero = newArchetype(
		tags.Hero,
		components.Hero,
		components.Combatant,
		components.Object,
		components.Health,
		components.Attack,
		components.Status,
		components.Stats,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Combatant,
		components.Object,
		components.Health,
		components.Attack,
		components.Status,
		components.Stats,
		components.Physics,
	)
	Block = newArchetype(
		tags.Block,
		components.Block,
		components.Object,
		components.Health,
		components.Physics,
	)
	Barrel = newArchetype(
		tags.Barrel,
		components.Barrel,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
	)
	Battle = newArchetype(
		components.Battle,
		components.Clock,
		components.Launcher,
		components.Scheduler,
		components.Tally,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
