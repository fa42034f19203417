package factory

import (
	"github.com/krool/slingsquad/archetypes"
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHero queues a hero at the slingshot. Unknown classes fall back to
// Warrior.
func CreateHero(ecs *ecs.ECS, class cfg.HeroClass, x, y float64, queueIndex int) *donburi.Entry {
	heroType, exists := cfg.Heroes.Types[class]
	if !exists {
		class = cfg.Warrior
		heroType = cfg.Heroes.Types[class]
	}

	hero := archetypes.Hero.Spawn(ecs)
	addObject(ecs, hero, x, y, heroType.Width, heroType.Height, tags.ResolvHero)

	components.Hero.SetValue(hero, components.HeroData{
		Class:      class,
		Config:     &heroType,
		QueueIndex: queueIndex,
		PierceLeft: heroType.PierceCount,

		IgnoreContact: donburi.Null,
	})
	components.Combatant.SetValue(hero, components.CombatantData{
		Faction: cfg.FactionHero,
		State:   cfg.StateIdle,
	})

	maxHealth := heroType.Health * (1 + modifiers(ecs).HeroHealthPct)
	components.Health.SetValue(hero, components.HealthData{
		Current: maxHealth,
		Max:     maxHealth,
	})
	components.Attack.SetValue(hero, components.AttackData{
		Damage:   heroType.Damage,
		Range:    heroType.Range,
		Interval: heroType.AttackInterval,
	})
	components.Physics.SetValue(hero, components.PhysicsData{
		Mass: heroType.Mass,
	})

	return hero
}

// CreateMinion summons a Necromancer minion that fights immediately.
func CreateMinion(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	minion := CreateHero(ecs, cfg.Minion, x, y, -1)
	hero := components.Hero.Get(minion)
	hero.Summoned = true
	hero.Launched = true
	components.Combatant.Get(minion).State = cfg.StateActive
	components.Physics.Get(minion).Dynamic = true
	return minion
}

func modifiers(ecs *ecs.ECS) cfg.ModifierSet {
	if e, ok := components.Battle.First(ecs.World); ok {
		return components.Battle.Get(e).Modifiers
	}
	return cfg.ModifierSet{}
}
