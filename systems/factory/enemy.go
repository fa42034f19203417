package factory

import (
	"github.com/krool/slingsquad/archetypes"
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy places an idle enemy. Unknown classes fall back to Grunt.
func CreateEnemy(ecs *ecs.ECS, class cfg.EnemyClass, x, y float64) *donburi.Entry {
	enemyType, exists := cfg.Enemies.Types[class]
	if !exists {
		class = cfg.Grunt
		enemyType = cfg.Enemies.Types[class]
	}

	enemy := archetypes.Enemy.Spawn(ecs)
	addObject(ecs, enemy, x, y, enemyType.Width, enemyType.Height, tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Class:      class,
		Config:     &enemyType,
		Facing:     -1, // heroes come from the left
		RushTarget: donburi.Null,
	})
	components.Combatant.SetValue(enemy, components.CombatantData{
		Faction: cfg.FactionEnemy,
		State:   cfg.StateIdle,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Attack.SetValue(enemy, components.AttackData{
		Damage:   enemyType.Damage,
		Range:    enemyType.Range,
		Interval: enemyType.AttackInterval,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Mass: enemyType.Mass,
	})

	return enemy
}
