package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ModifierSet is the per-battle bag of numeric bonuses coming from
// meta-progression. It is passed by value and never mutated during a battle.
// Percentages are fractions (0.25 == +25%).
type ModifierSet struct {
	FlatDamage        float64 `yaml:"flat_damage" json:"flatDamage"`
	DamagePct         float64 `yaml:"damage_pct" json:"damagePct"`
	ImpactRadiusBonus float64 `yaml:"impact_radius_bonus" json:"impactRadiusBonus"`

	StoneDamagePct float64 `yaml:"stone_damage_pct" json:"stoneDamagePct"`
	WoodDamagePct  float64 `yaml:"wood_damage_pct" json:"woodDamagePct"`

	CritChance         float64 `yaml:"crit_chance" json:"critChance"`
	CritDamagePct      float64 `yaml:"crit_damage_pct" json:"critDamagePct"`
	LowHealthDamagePct float64 `yaml:"low_health_damage_pct" json:"lowHealthDamagePct"`

	ThornsPct    float64 `yaml:"thorns_pct" json:"thornsPct"`
	ResurrectPct float64 `yaml:"resurrect_pct" json:"resurrectPct"`

	ExplosionRadiusBonus float64 `yaml:"explosion_radius_bonus" json:"explosionRadiusBonus"`
	ExplosionDamagePct   float64 `yaml:"explosion_damage_pct" json:"explosionDamagePct"`

	HeroHealthPct     float64 `yaml:"hero_health_pct" json:"heroHealthPct"`
	HealPct           float64 `yaml:"heal_pct" json:"healPct"`
	CharmTicksBonus   uint64  `yaml:"charm_ticks_bonus" json:"charmTicksBonus"`
	LaunchCooldownPct float64 `yaml:"launch_cooldown_pct" json:"launchCooldownPct"`
}

// ParseModifierSet decodes a YAML modifier document. Unknown keys are rejected.
func ParseModifierSet(data []byte) (ModifierSet, error) {
	var mods ModifierSet
	if len(data) == 0 {
		return mods, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&mods); err != nil {
		return ModifierSet{}, fmt.Errorf("parse modifiers: %w", err)
	}
	if err := mods.Validate(); err != nil {
		return ModifierSet{}, err
	}
	return mods, nil
}

// Validate rejects values no formula can make sense of.
func (m ModifierSet) Validate() error {
	if m.CritChance < 0 || m.CritChance > 1 {
		return fmt.Errorf("crit_chance %.2f out of [0,1]", m.CritChance)
	}
	if m.ResurrectPct < 0 || m.ResurrectPct > 1 {
		return fmt.Errorf("resurrect_pct %.2f out of [0,1]", m.ResurrectPct)
	}
	if m.LaunchCooldownPct >= 1 {
		return fmt.Errorf("launch_cooldown_pct %.2f removes the cooldown", m.LaunchCooldownPct)
	}
	if m.ThornsPct < 0 {
		return fmt.Errorf("thorns_pct %.2f is negative", m.ThornsPct)
	}
	return nil
}

// MaterialDamagePct returns the bonus for hitting a block of the given material.
func (m ModifierSet) MaterialDamagePct(mat Material) float64 {
	switch mat {
	case Stone:
		return m.StoneDamagePct
	case Wood:
		return m.WoodDamagePct
	}
	return 0
}
