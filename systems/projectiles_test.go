package systems

import (
	"testing"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/events"
	"github.com/krool/slingsquad/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func fire(e *ecs.ECS, faction cfg.Faction, owner *donburi.Entry, x, y, velX float64) *donburi.Entry {
	return factory.CreateProjectile(e, factory.ProjectileSpec{
		Faction:  faction,
		Owner:    entityOf(owner),
		X:        x,
		Y:        y,
		VelX:     velX,
		Damage:   10,
		Radius:   4,
		Lifetime: 2,
	})
}

func advanceProjectiles(e *ecs.ECS, dt float64, frames int) {
	clock(e).Delta = dt
	for i := 0; i < frames; i++ {
		UpdateProjectiles(e)
	}
}

func TestUpdateProjectiles_MovesAndExpires(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	p := fire(e, cfg.FactionHero, nil, 400, 300, 100)

	advanceProjectiles(e, 0.5, 1)

	obj := components.Object.Get(p)
	assert.InDelta(t, 450.0, obj.CenterX(), 1e-9)
	assert.False(t, components.Projectile.Get(p).Destroyed)

	advanceProjectiles(e, 0.5, 3)
	assert.True(t, components.Projectile.Get(p).Destroyed)
	assert.True(t, p.HasComponent(components.Despawn))
}

func TestUpdateProjectiles_SweptHitStopsAtFirstTarget(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	first := spawnEnemy(e, cfg.Grunt, 460, 300, cfg.StateIdle)
	second := spawnEnemy(e, cfg.Grunt, 520, 300, cfg.StateIdle)
	p := fire(e, cfg.FactionHero, nil, 400, 300, 1000)

	// one frame crosses both enemies
	advanceProjectiles(e, 0.2, 1)

	assert.Equal(t, 50.0, health(first))
	assert.Equal(t, 60.0, health(second))
	assert.True(t, components.Projectile.Get(p).Destroyed)
}

func TestUpdateProjectiles_IgnoresOwnFactionAndDead(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 440, 300, cfg.StateActive)
	dead := spawnEnemy(e, cfg.Grunt, 480, 300, cfg.StateDead)
	target := spawnEnemy(e, cfg.Grunt, 520, 300, cfg.StateIdle)
	fire(e, cfg.FactionHero, nil, 400, 300, 1000)

	advanceProjectiles(e, 0.2, 1)

	assert.Equal(t, 150.0, health(hero))
	assert.Equal(t, 60.0, health(dead))
	assert.Equal(t, 50.0, health(target))
}

func TestUpdateProjectiles_SlowPayload(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	status := collect(e.World, events.StatusAppliedEvent)
	caster := spawnEnemy(e, cfg.FrostCaster, 600, 300, cfg.StateActive)
	hero := spawnHero(e, cfg.Warrior, 450, 300, cfg.StateActive)
	p := fire(e, cfg.FactionEnemy, caster, 500, 300, -300)
	components.Projectile.Get(p).Slow = &cfg.SlowPayload{Factor: 1.5, Ticks: 30}

	advanceProjectiles(e, 0.2, 1)
	events.Flush(e.World)

	assert.Equal(t, 140.0, health(hero))
	slow := components.Status.Get(hero).Slow
	assert.True(t, slow.Active)
	assert.Equal(t, uint64(30), slow.ExpiresAtTick)
	require.Len(t, *status, 1)
	assert.Equal(t, cfg.StatusSlow, (*status)[0].Kind)
	assert.Equal(t, caster.Entity(), (*status)[0].Source)
	assert.Equal(t, 10.0, components.Stats.Get(caster).DamageDealt)
}

func TestUpdateProjectiles_PoisonPulses(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 450, 300, cfg.StateActive)
	p := fire(e, cfg.FactionEnemy, nil, 500, 300, -300)
	components.Projectile.Get(p).Poison = &cfg.PoisonPayload{DamagePerPulse: 3, Pulses: 3, EveryTicks: 5}

	advanceProjectiles(e, 0.2, 1)
	require.Equal(t, 140.0, health(hero))

	tick(e, 4)
	assert.Equal(t, 140.0, health(hero))
	tick(e, 1)
	assert.Equal(t, 137.0, health(hero))
	tick(e, 20)
	assert.Equal(t, 131.0, health(hero))
	assert.False(t, components.Status.Get(hero).Poison.Active)
}

func TestUpdateProjectiles_AllyBlockAbsorbsEnemyShots(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	wall := factoryAllyBlock(e, 450, 300)
	p := fire(e, cfg.FactionEnemy, nil, 520, 300, -1000)

	advanceProjectiles(e, 0.2, 1)

	assert.Equal(t, 150.0, health(hero))
	assert.Equal(t, 50.0, health(wall))
	assert.True(t, components.Projectile.Get(p).Destroyed)
}

func TestUpdateProjectiles_HeroShotsPassAllyBlocks(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	wall := factoryAllyBlock(e, 450, 300)
	grunt := spawnEnemy(e, cfg.Grunt, 500, 300, cfg.StateIdle)
	fire(e, cfg.FactionHero, nil, 400, 300, 1000)

	advanceProjectiles(e, 0.2, 1)

	assert.Equal(t, 60.0, health(wall))
	assert.Equal(t, 50.0, health(grunt))
}
