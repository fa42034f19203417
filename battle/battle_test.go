package battle

import (
	"math"
	"testing"

	"github.com/krool/slingsquad/assets"
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/events"
	"github.com/krool/slingsquad/shared/leveldata"
	"github.com/krool/slingsquad/systems"
	"github.com/krool/slingsquad/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var upAndRight = systems.LaunchAim{Angle: -math.Pi / 4, Power: 0.6}

func newBattle(t *testing.T, opts ...Option) *Battle {
	t.Helper()
	b, err := New(cfg.ModifierSet{}, append([]Option{WithSeed(7)}, opts...)...)
	require.NoError(t, err)
	return b
}

func loadSkirmish(t *testing.T, b *Battle) {
	t.Helper()
	scene, err := leveldata.LoadScene(assets.Scenes(), assets.ScenePath("skirmish"))
	require.NoError(t, err)
	require.NoError(t, b.LoadScene(scene))
}

func TestNewRejectsInvalidModifiers(t *testing.T) {
	_, err := New(cfg.ModifierSet{CritChance: 2})
	assert.Error(t, err)

	_, err = New(cfg.ModifierSet{}, WithWorldSize(0, 100))
	assert.Error(t, err)
}

func TestLoadScene(t *testing.T) {
	b := newBattle(t)
	loadSkirmish(t, b)

	heroes, enemies := b.Alive()
	assert.Equal(t, 4, heroes)
	assert.Equal(t, 5, enemies)
	assert.Equal(t, Ongoing, b.Outcome())
	assert.False(t, b.AllLaunched())

	e, ok := components.Battle.First(b.World())
	require.True(t, ok)
	assert.Equal(t, 608.0, components.Battle.Get(e).GroundY)
}

func TestLoadSceneDefaultsBarrels(t *testing.T) {
	b := newBattle(t)
	loadSkirmish(t, b)

	var radii, damages []float64
	components.Barrel.Each(b.World(), func(e *donburi.Entry) {
		barrel := components.Barrel.Get(e)
		radii = append(radii, barrel.Radius)
		damages = append(damages, barrel.Damage)
	})
	assert.ElementsMatch(t, []float64{80, cfg.Explosion.DefaultRadius, cfg.Explosion.DefaultRadius}, radii)
	assert.ElementsMatch(t, []float64{45, cfg.Explosion.DefaultDamage, cfg.Explosion.DefaultDamage}, damages)
}

func TestLoadSceneRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		scene *leveldata.Scene
	}{
		{"nil", nil},
		{"no heroes", &leveldata.Scene{Name: "empty"}},
		{"unknown hero", &leveldata.Scene{Name: "x", Heroes: []leveldata.HeroSpawn{{Class: "Paladin"}}}},
		{"minion", &leveldata.Scene{Name: "x", Heroes: []leveldata.HeroSpawn{{Class: "Minion"}}}},
		{"unknown enemy", &leveldata.Scene{
			Name:    "x",
			Heroes:  []leveldata.HeroSpawn{{Class: "Warrior"}},
			Enemies: []leveldata.EnemySpawn{{Class: "Dragon"}},
		}},
		{"unknown material", &leveldata.Scene{
			Name:   "x",
			Heroes: []leveldata.HeroSpawn{{Class: "Warrior"}},
			Blocks: []leveldata.BlockSpawn{{W: 10, H: 10, Material: "glass"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBattle(t)
			assert.Error(t, b.LoadScene(tt.scene))

			heroes, enemies := b.Alive()
			assert.Zero(t, heroes)
			assert.Zero(t, enemies)
		})
	}
}

func TestLaunchHookAndCooldown(t *testing.T) {
	b := newBattle(t)
	loadSkirmish(t, b)

	var launched []events.Launched
	b.OnLaunch(func(ev events.Launched) { launched = append(launched, ev) })

	hero, ok := b.Launch(upAndRight)
	require.True(t, ok)
	require.Len(t, launched, 1)
	assert.Equal(t, hero, launched[0].Hero)
	assert.Equal(t, cfg.Warrior, launched[0].Class)
	assert.Equal(t, 1, b.HeroesInFlight())

	_, ok = b.Launch(upAndRight)
	assert.False(t, ok, "launch cooldown")
	assert.Len(t, launched, 1)
}

func TestCollideResolvesImpact(t *testing.T) {
	b := newBattle(t)
	hero := factory.CreateHero(b.ECS(), cfg.Warrior, 100, 100, 0)
	enemy := factory.CreateEnemy(b.ECS(), cfg.Grunt, 130, 100)

	var damage []events.DamageApplied
	b.OnDamage(func(ev events.DamageApplied) { damage = append(damage, ev) })

	_, ok := b.Launch(upAndRight)
	require.True(t, ok)

	b.Collide(hero.Entity(), enemy.Entity(), 40)

	require.NotEmpty(t, damage)
	assert.Equal(t, enemy.Entity(), damage[0].Target)
	assert.Equal(t, cfg.StateActive, components.Combatant.Get(hero).State)
	assert.Zero(t, b.HeroesInFlight())

	// A second contact is not an impact.
	n := len(damage)
	b.Collide(hero.Entity(), donburi.Null, 40)
	assert.Len(t, damage, n)
}

func TestCollideIgnoresRemovedEntities(t *testing.T) {
	b := newBattle(t)
	block := factory.CreateBlock(b.ECS(), cfg.Wood, 0, 0, 10, 10)
	gone := block.Entity()
	b.World().Remove(gone)

	assert.NotPanics(t, func() { b.Collide(gone, donburi.Null, 100) })
}

func TestUpdateRunsTicks(t *testing.T) {
	b := newBattle(t)
	factory.CreateHero(b.ECS(), cfg.Warrior, 100, 100, 0)

	for range 3 {
		b.Update(cfg.Combat.TickInterval)
	}
	assert.Equal(t, uint64(3), b.Tick())
	assert.InDelta(t, 3*cfg.Combat.TickInterval, b.Report().Elapsed, 1e-9)
}

func TestOutcome(t *testing.T) {
	b := newBattle(t)
	assert.Equal(t, Ongoing, b.Outcome(), "empty battle")

	hero := factory.CreateHero(b.ECS(), cfg.Warrior, 100, 100, 0)
	assert.Equal(t, Ongoing, b.Outcome(), "enemies not placed yet")

	enemy := factory.CreateEnemy(b.ECS(), cfg.Grunt, 500, 100)
	assert.Equal(t, Ongoing, b.Outcome())

	systems.ApplyDamage(b.ECS(), enemy, hero, 1000)
	assert.Equal(t, Victory, b.Outcome())
	assert.Equal(t, "victory", b.Outcome().String())
}

func TestOutcomeDefeat(t *testing.T) {
	b := newBattle(t)
	factory.CreateEnemy(b.ECS(), cfg.Grunt, 500, 100)
	assert.Equal(t, Ongoing, b.Outcome(), "heroes not placed yet")

	hero := factory.CreateHero(b.ECS(), cfg.Warrior, 100, 100, 0)
	systems.ApplyDamage(b.ECS(), hero, nil, 1000)
	assert.Equal(t, Defeat, b.Outcome())
	assert.Equal(t, "defeat", b.Outcome().String())
}

func TestAutopilotLaunchesSquad(t *testing.T) {
	b := newBattle(t, WithBuiltinPhysics())
	loadSkirmish(t, b)

	pilot := Autopilot{Aim: upAndRight}
	launches := 0
	for i := 0; i < 60*30 && !b.AllLaunched(); i++ {
		if pilot.Step(b) {
			launches++
		}
		b.Update(1.0 / 60)
	}

	assert.True(t, b.AllLaunched())
	assert.Equal(t, 4, launches)
	assert.False(t, pilot.Step(b))
}
