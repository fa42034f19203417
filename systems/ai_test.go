package systems

import (
	"testing"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func walk(e *ecs.ECS, dt float64, frames int) {
	clock(e).Delta = dt
	for i := 0; i < frames; i++ {
		UpdateHeroWalk(e)
	}
}

func TestUpdateHeroWalk_TowardNearestEnemy(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	spawnEnemy(e, cfg.Grunt, 250, 300, cfg.StateIdle)
	spawnEnemy(e, cfg.Grunt, 700, 300, cfg.StateIdle)

	walk(e, 1.0/60, 1)

	assert.Equal(t, -cfg.Heroes.Types[cfg.Warrior].WalkSpeed, components.Physics.Get(hero).VelX)
	assert.Equal(t, -1.0, components.Hero.Get(hero).WalkDir)
}

func TestUpdateHeroWalk_Halts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *ecs.ECS)
	}{
		{"enemy in range", func(e *ecs.ECS) {
			spawnEnemy(e, cfg.Grunt, 430, 300, cfg.StateIdle)
		}},
		{"block ahead", func(e *ecs.ECS) {
			spawnBlock(e, cfg.Stone, 425, 300, 20, 40)
			spawnEnemy(e, cfg.Grunt, 700, 300, cfg.StateIdle)
		}},
		{"no enemy left", func(e *ecs.ECS) {
			spawnEnemy(e, cfg.Grunt, 700, 300, cfg.StateDead)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t, cfg.ModifierSet{})
			hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
			components.Physics.Get(hero).VelX = 50
			tt.setup(e)

			walk(e, 1.0/60, 1)

			assert.Zero(t, components.Physics.Get(hero).VelX)
			assert.Zero(t, components.Hero.Get(hero).WalkDir)
		})
	}
}

func TestUpdateHeroWalk_BlockBehindDoesNotHalt(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	spawnBlock(e, cfg.Stone, 375, 300, 20, 40)
	spawnEnemy(e, cfg.Grunt, 700, 300, cfg.StateIdle)

	walk(e, 1.0/60, 1)

	assert.Greater(t, components.Physics.Get(hero).VelX, 0.0)
}

func TestUpdateHeroWalk_ReversesWhenStuck(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	spawnEnemy(e, cfg.Grunt, 700, 300, cfg.StateIdle)
	data := components.Hero.Get(hero)

	// nothing integrates the velocity, so the hero never moves
	walk(e, 0.5, 4)
	assert.Equal(t, -1.0, data.WalkDir)
	assert.Equal(t, cfg.Walk.ReverseDuration, data.ReverseTimer)

	walk(e, 0.5, 1)
	assert.Equal(t, -cfg.Heroes.Types[cfg.Warrior].WalkSpeed, components.Physics.Get(hero).VelX)

	walk(e, 0.5, 2)
	assert.Greater(t, components.Physics.Get(hero).VelX, 0.0, "back on course once the reversal ran out")
}

func TestUpdateHeroWalk_OnlyActiveHeroes(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	flying := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateFlying)
	components.Physics.Get(flying).VelX = 500
	spawnEnemy(e, cfg.Grunt, 100, 300, cfg.StateIdle)

	walk(e, 1.0/60, 1)

	assert.Equal(t, 500.0, components.Physics.Get(flying).VelX)
}

func TestUpdateRushers_HomesOnTarget(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	bomber := spawnEnemy(e, cfg.Bomber, 600, 300, cfg.StateRushing)
	components.Enemy.Get(bomber).RushTarget = hero.Entity()

	UpdateRushers(e)

	phys := components.Physics.Get(bomber)
	assert.Equal(t, -cfg.Enemies.Types[cfg.Bomber].RushSpeed, phys.VelX)
	assert.Zero(t, phys.VelY)
	assert.Equal(t, -1.0, components.Enemy.Get(bomber).Facing)
}

func TestUpdateRushers_RetargetsLostTarget(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	gone := spawnHero(e, cfg.Rogue, 800, 300, cfg.StateDead)
	other := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	bomber := spawnEnemy(e, cfg.Bomber, 600, 300, cfg.StateRushing)
	components.Enemy.Get(bomber).RushTarget = gone.Entity()

	UpdateRushers(e)

	assert.Equal(t, other.Entity(), components.Enemy.Get(bomber).RushTarget)
	assert.Less(t, components.Physics.Get(bomber).VelX, 0.0)
}

func TestUpdateRushers_DetonatesOnArrival(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	bomber := spawnEnemy(e, cfg.Sapper, 410, 300, cfg.StateRushing)
	components.Enemy.Get(bomber).RushTarget = hero.Entity()

	UpdateRushers(e)

	assert.Equal(t, cfg.StateDead, components.Combatant.Get(bomber).State)
	// 55·(1 − 10/90)
	assert.InDelta(t, 150-55*(1-10.0/90), health(hero), 1e-9)
}

func TestUpdateRushers_CharmedIdleRusherWaitsForCharmToEnd(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 100, 300, cfg.StateActive)
	bomber := spawnEnemy(e, cfg.Bomber, 600, 300, cfg.StateIdle)

	applyCharm(e, bomber, nil, 40)
	assert.Equal(t, cfg.StateRushing, components.Combatant.Get(bomber).State)
	assert.True(t, components.Physics.Get(bomber).Dynamic)

	UpdateRushers(e)
	phys := components.Physics.Get(bomber)
	assert.Zero(t, phys.VelX, "no other enemy to chase")
	assert.Equal(t, donburi.Null, components.Enemy.Get(bomber).RushTarget)

	tick(e, 40)
	assert.False(t, components.Status.Get(bomber).Charm.Active)

	UpdateRushers(e)
	assert.Equal(t, hero.Entity(), components.Enemy.Get(bomber).RushTarget)
	assert.Equal(t, -cfg.Enemies.Types[cfg.Bomber].RushSpeed, phys.VelX)
}

func TestUpdateRushers_CharmedRusherTurnsOnEnemies(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 435, 300, cfg.StateActive)
	bomber := spawnEnemy(e, cfg.Bomber, 450, 300, cfg.StateRushing)
	grunt := spawnEnemy(e, cfg.Grunt, 700, 300, cfg.StateIdle)
	components.Enemy.Get(bomber).RushTarget = hero.Entity()

	applyCharm(e, bomber, nil, 40)
	UpdateRushers(e)

	assert.Equal(t, cfg.StateRushing, components.Combatant.Get(bomber).State, "hero in detonate range is ignored")
	assert.Equal(t, grunt.Entity(), components.Enemy.Get(bomber).RushTarget)
	assert.Equal(t, cfg.Enemies.Types[cfg.Bomber].RushSpeed, components.Physics.Get(bomber).VelX)
	assert.Equal(t, cfg.Heroes.Types[cfg.Warrior].Health, health(hero))
}
