package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModifierSet(t *testing.T) {
	data := []byte(`
flat_damage: 4
damage_pct: 0.25
stone_damage_pct: 0.5
crit_chance: 0.1
thorns_pct: 0.2
resurrect_pct: 0.5
charm_ticks_bonus: 10
launch_cooldown_pct: 0.3
`)

	mods, err := ParseModifierSet(data)
	require.NoError(t, err)

	assert.Equal(t, 4.0, mods.FlatDamage)
	assert.Equal(t, 0.25, mods.DamagePct)
	assert.Equal(t, 0.1, mods.CritChance)
	assert.Equal(t, uint64(10), mods.CharmTicksBonus)
	assert.Equal(t, 0.5, mods.MaterialDamagePct(Stone))
	assert.Zero(t, mods.MaterialDamagePct(Ice))
}

func TestParseModifierSet_Empty(t *testing.T) {
	mods, err := ParseModifierSet(nil)
	require.NoError(t, err)
	assert.Equal(t, ModifierSet{}, mods)
}

func TestParseModifierSet_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "flat_damag: 3"},
		{"not yaml", "flat_damage: [1"},
		{"crit above one", "crit_chance: 1.5"},
		{"negative resurrect", "resurrect_pct: -0.1"},
		{"no launch cooldown", "launch_cooldown_pct: 1"},
		{"negative thorns", "thorns_pct: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, err := ParseModifierSet([]byte(tt.data))
			assert.Error(t, err)
			assert.Equal(t, ModifierSet{}, mods)
		})
	}
}

func TestParseMaterial(t *testing.T) {
	m, ok := ParseMaterial("stone")
	assert.True(t, ok)
	assert.Equal(t, Stone, m)

	_, ok = ParseMaterial("cheese")
	assert.False(t, ok)
}

func TestClassTablesAreComplete(t *testing.T) {
	for _, class := range LaunchOrder {
		conf, ok := Heroes.Types[class]
		require.True(t, ok, class)
		assert.Equal(t, class, conf.Name)
		assert.Positive(t, conf.ImpactRadius, class)
		assert.Positive(t, conf.DamageMultiplier, class)
	}
	for class, conf := range Enemies.Types {
		assert.Equal(t, class, conf.Name)
		if conf.Behavior == BehaviorRush {
			assert.Positive(t, conf.BlastRadius, class)
		}
	}
}
