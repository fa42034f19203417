package systems

import (
	"testing"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldownTicks(t *testing.T) {
	tests := []struct {
		seconds float64
		want    uint64
	}{
		{1.0, 10},
		{0.75, 8},
		{0.6, 6},
		{0.05, 1},
		{0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cooldownTicks(tt.seconds), "%.2fs", tt.seconds)
	}
}

func TestUpdateCombat_AccumulatesFixedTicks(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	c := clock(e)

	c.Delta = 0.25
	UpdateClock(e)
	UpdateCombat(e)
	assert.Equal(t, uint64(2), c.Tick)
	assert.InDelta(t, 0.05, c.Accumulator, 1e-9)

	c.Delta = 0.06
	UpdateClock(e)
	UpdateCombat(e)
	assert.Equal(t, uint64(3), c.Tick)

	c.Delta = 5
	UpdateClock(e)
	UpdateCombat(e)
	assert.Equal(t, uint64(3+cfg.Combat.MaxTicksPerFrame), c.Tick)
	assert.InDelta(t, 5.01-float64(cfg.Combat.MaxTicksPerFrame)*cfg.Combat.TickInterval, c.Accumulator, 1e-9)
	assert.InDelta(t, 5.31, c.Elapsed, 1e-9)
}

func TestUpdateCombat_SlowFrameBacklogCatchesUp(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	c := clock(e)

	frame := func(dt float64) {
		c.Delta = dt
		UpdateClock(e)
		UpdateCombat(e)
	}

	frame(1.0)
	assert.Equal(t, uint64(cfg.Combat.MaxTicksPerFrame), c.Tick)

	frame(0.01)
	assert.Equal(t, uint64(10), c.Tick)
	assert.InDelta(t, 0.01, c.Accumulator, 1e-9)

	for range 5 {
		frame(0.01)
	}
	assert.Equal(t, uint64(10), c.Tick)
	assert.InDelta(t, 1.06, c.Elapsed, 1e-9)
}

func TestHeroAttack_CooldownGating(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	damage := collect(e.World, events.DamageAppliedEvent)
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	grunt := spawnEnemy(e, cfg.Grunt, 420, 300, cfg.StateActive)

	tick(e, 2)

	assert.Equal(t, 46.0, health(grunt))
	fromHero := 0
	for _, d := range *damage {
		if d.Source == hero.Entity() {
			fromHero++
		}
	}
	assert.Equal(t, 1, fromHero)
	assert.Equal(t, uint64(11), components.Attack.Get(hero).NextTick)
}

func TestHeroAttack_HitsEveryEnemyInRange(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{FlatDamage: 6, DamagePct: 0.5})
	spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	left := spawnEnemy(e, cfg.Grunt, 370, 300, cfg.StateIdle)
	right := spawnEnemy(e, cfg.Grunt, 430, 300, cfg.StateIdle)
	far := spawnEnemy(e, cfg.Grunt, 480, 300, cfg.StateIdle)

	tick(e, 1)

	assert.Equal(t, 30.0, health(left))
	assert.Equal(t, 30.0, health(right))
	assert.Equal(t, 60.0, health(far))
}

func TestHeroAttack_CritAndLowHealth(t *testing.T) {
	tests := []struct {
		name     string
		mods     cfg.ModifierSet
		heroHP   float64
		want     float64
		wantCrit bool
	}{
		{"plain", cfg.ModifierSet{}, 150, 14, false},
		{"certain crit", cfg.ModifierSet{CritChance: 1, CritDamagePct: 0.5}, 150, 14 * 2.5, true},
		{"low health", cfg.ModifierSet{LowHealthDamagePct: 1}, 30, 28, false},
		{"low health threshold is exclusive", cfg.ModifierSet{LowHealthDamagePct: 1}, 45, 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t, tt.mods)
			damage := collect(e.World, events.DamageAppliedEvent)
			hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
			components.Health.Get(hero).Current = tt.heroHP
			brute := spawnEnemy(e, cfg.Brute, 420, 300, cfg.StateIdle)

			tick(e, 1)

			assert.InDelta(t, 140-tt.want, health(brute), 1e-9)
			require.NotEmpty(t, *damage)
			assert.Equal(t, tt.wantCrit, (*damage)[0].Crit)
		})
	}
}

func TestHeroAttack_FallsBackToNearestBlock(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{WoodDamagePct: 1})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	near := spawnBlock(e, cfg.Wood, 430, 300, 20, 20)
	farther := spawnBlock(e, cfg.Wood, 365, 300, 20, 20)
	spawnEnemy(e, cfg.Grunt, 900, 300, cfg.StateIdle)

	tick(e, 1)

	assert.Equal(t, 60-14*0.5*2, health(near))
	assert.Equal(t, 60.0, health(farther))
	assert.Equal(t, uint64(11), components.Attack.Get(hero).NextTick)
}

func TestHeroAttack_IdleWithoutTargets(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	ally := factoryAllyBlock(e, 420, 300)

	tick(e, 1)

	assert.Equal(t, 60.0, health(ally), "heroes never attack their own blocks")
	assert.Zero(t, components.Attack.Get(hero).NextTick)
}

func TestHeroAttack_BardAuraAndSlow(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	warrior := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	spawnHero(e, cfg.Bard, 300, 300, cfg.StateActive)
	slowed := spawnHero(e, cfg.Rogue, 1400, 300, cfg.StateActive)
	components.Status.Get(slowed).Slow = components.SlowStatus{
		TimedStatus: components.TimedStatus{Active: true, ExpiresAtTick: 100},
		Factor:      1.5,
	}
	spawnEnemy(e, cfg.Knight, 420, 300, cfg.StateIdle)
	spawnEnemy(e, cfg.Knight, 1420, 300, cfg.StateIdle)

	tick(e, 1)

	// 1.0s · 0.75 = 8 ticks, 0.6s · 1.5 = 9 ticks
	assert.Equal(t, uint64(9), components.Attack.Get(warrior).NextTick)
	assert.Equal(t, uint64(10), components.Attack.Get(slowed).NextTick)
}

func TestEnemyAttack_KilledEnemyDoesNotStrikeBack(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	grunt := spawnEnemy(e, cfg.Grunt, 420, 300, cfg.StateActive)
	components.Health.Get(grunt).Current = 10

	tick(e, 1)

	assert.Equal(t, cfg.StateDead, components.Combatant.Get(grunt).State)
	assert.Equal(t, 150.0, health(hero))

	tick(e, 20)
	assert.Equal(t, 150.0, health(hero), "dead enemies never act again")
}

func TestEnemyAttack_MeleeNearestHero(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	near := spawnHero(e, cfg.Rogue, 400, 300, cfg.StateActive)
	farther := spawnHero(e, cfg.Warrior, 455, 300, cfg.StateActive)
	grunt := spawnEnemy(e, cfg.Grunt, 425, 300, cfg.StateIdle)

	tick(e, 1)

	assert.Equal(t, cfg.StateActive, components.Combatant.Get(grunt).State, "aggro wakes the enemy")
	assert.Equal(t, 77.0, health(near))
	assert.Equal(t, 150.0, health(farther))
	assert.Equal(t, -1.0, components.Enemy.Get(grunt).Facing)
}

func TestEnemyAttack_CharmedAloneDoesNothing(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Priest, 400, 300, cfg.StateActive)
	components.Attack.Get(hero).NextTick = 1000
	grunt := spawnEnemy(e, cfg.Grunt, 420, 300, cfg.StateActive)
	components.Status.Get(grunt).Charm = components.TimedStatus{Active: true, ExpiresAtTick: 100}

	tick(e, 1)

	assert.Equal(t, 100.0, health(hero))
	assert.Zero(t, components.Attack.Get(grunt).NextTick, "no attack, no cooldown")
}

func TestEnemyAttack_CharmedHitsOtherEnemy(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	charmed := spawnEnemy(e, cfg.Grunt, 400, 300, cfg.StateActive)
	victim := spawnEnemy(e, cfg.Grunt, 420, 300, cfg.StateIdle)
	components.Status.Get(charmed).Charm = components.TimedStatus{Active: true, ExpiresAtTick: 3}

	tick(e, 1)
	assert.Equal(t, 52.0, health(victim))
	assert.Equal(t, 60.0, health(charmed))

	tick(e, 2)
	assert.False(t, components.Status.Get(charmed).Charm.Active, "charm expires at its tick")
}

func TestEnemyAttack_SupportHealsMostInjured(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	shaman := spawnEnemy(e, cfg.Shaman, 400, 300, cfg.StateActive)
	worst := spawnEnemy(e, cfg.Grunt, 500, 300, cfg.StateIdle)
	hurt := spawnEnemy(e, cfg.Grunt, 450, 300, cfg.StateIdle)
	components.Health.Get(worst).Current = 20
	components.Health.Get(hurt).Current = 40

	tick(e, 1)

	assert.Equal(t, 40.0, health(worst))
	assert.Equal(t, 40.0, health(hurt))
	assert.Equal(t, 20.0, components.Stats.Get(shaman).Healing)
}

func TestEnemyAttack_SupportMeleesWhenNobodyIsHurt(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	components.Attack.Get(hero).NextTick = 1000
	spawnEnemy(e, cfg.Shaman, 420, 300, cfg.StateActive)

	tick(e, 1)

	assert.Equal(t, 145.0, health(hero))
}

func TestEnemyAttack_RangedFiresProjectile(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateActive)
	poisoner := spawnEnemy(e, cfg.Poisoner, 550, 300, cfg.StateActive)

	tick(e, 1)

	require.Equal(t, 1, projectileQuery.Count(e.World))
	p, _ := projectileQuery.First(e.World)
	proj := components.Projectile.Get(p)
	assert.Equal(t, cfg.FactionEnemy, proj.Faction)
	assert.Equal(t, poisoner.Entity(), proj.Owner)
	require.NotNil(t, proj.Poison)
	assert.Less(t, components.Physics.Get(p).VelX, 0.0)
	assert.Equal(t, 150.0, health(hero), "damage lands only when the projectile hits")
}

func TestAggro(t *testing.T) {
	e := newTestECS(t, cfg.ModifierSet{})
	hero := spawnHero(e, cfg.Warrior, 400, 300, cfg.StateFlying)
	spawnHero(e, cfg.Mage, 1000, 300, cfg.StateIdle)
	near := spawnEnemy(e, cfg.Grunt, 550, 300, cfg.StateIdle)
	far := spawnEnemy(e, cfg.Grunt, 700, 300, cfg.StateIdle)
	byQueue := spawnEnemy(e, cfg.Grunt, 1050, 300, cfg.StateIdle)
	bomber := spawnEnemy(e, cfg.Bomber, 600, 300, cfg.StateIdle)

	tick(e, 1)

	assert.Equal(t, cfg.StateActive, components.Combatant.Get(near).State)
	assert.Equal(t, cfg.StateIdle, components.Combatant.Get(far).State)
	assert.Equal(t, cfg.StateIdle, components.Combatant.Get(byQueue).State, "idle heroes draw no aggro")
	assert.Equal(t, cfg.StateRushing, components.Combatant.Get(bomber).State)
	assert.Equal(t, hero.Entity(), components.Enemy.Get(bomber).RushTarget)
	assert.True(t, components.Physics.Get(bomber).Dynamic)
}
