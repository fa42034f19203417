package systems

import (
	"math"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/systems/factory"
	"github.com/krool/slingsquad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances battle time by the frame delta.
func UpdateClock(ecs *ecs.ECS) {
	c := clock(ecs)
	if c.Delta <= 0 {
		return
	}
	c.Elapsed += c.Delta
	c.Accumulator += c.Delta
}

// UpdateCombat runs as many fixed combat ticks as the accumulated time
// allows, at most MaxTicksPerFrame. A backlog carries over to later frames.
func UpdateCombat(ecs *ecs.ECS) {
	c := clock(ecs)
	interval := cfg.Combat.TickInterval

	for ticks := 0; c.Accumulator >= interval && ticks < cfg.Combat.MaxTicksPerFrame; ticks++ {
		c.Accumulator -= interval
		AdvanceTick(ecs)
	}
}

// AdvanceTick resolves exactly one combat tick.
func AdvanceTick(ecs *ecs.ECS) {
	c := clock(ecs)
	c.Tick++
	tick := c.Tick

	updateStatuses(ecs, tick)
	drainScheduler(ecs, tick)
	updateAggro(ecs)
	updateHeroAttacks(ecs, tick)
	updateEnemyAttacks(ecs, tick)
}

// cooldownTicks converts an attack interval to whole ticks, at least one.
func cooldownTicks(seconds float64) uint64 {
	n := math.Ceil(seconds/cfg.Combat.TickInterval - 1e-9)
	if n < 1 {
		return 1
	}
	return uint64(n)
}

func offCooldown(e *donburi.Entry, tick uint64) bool {
	return tick >= components.Attack.Get(e).NextTick
}

// startCooldown sets the next attack tick from the entry's interval, scaled
// by slow and by speedBonus.
func startCooldown(e *donburi.Entry, tick uint64, speedBonus float64) {
	atk := components.Attack.Get(e)
	interval := atk.Interval * (1 - speedBonus) * components.Status.Get(e).CooldownFactor()
	atk.NextTick = tick + cooldownTicks(interval)
}

func updateHeroAttacks(ecs *ecs.ECS, tick uint64) {
	mods := modifiers(ecs)

	for _, hero := range snapshot(ecs.World, heroQuery) {
		if !isActive(hero) || !offCooldown(hero, tick) {
			continue
		}
		atk := components.Attack.Get(hero)
		x, y := centerOf(hero)

		var targets []*donburi.Entry
		for _, h := range entriesWithin(ecs, x, y, atk.Range, tags.ResolvEnemy) {
			if isAlive(h.entry) {
				targets = append(targets, h.entry)
			}
		}

		acted := false
		if len(targets) > 0 {
			dmg, crit := heroMeleeDamage(ecs, hero, mods)
			for _, t := range targets {
				applyDamage(ecs, t, hero, dmg, crit)
			}
			acted = true
		} else if block := nearestWithin(ecs, x, y, math.Min(atk.Range, cfg.Combat.MaxBlockRange),
			blockStanding, tags.ResolvBlock); block != nil {
			base := (atk.Damage + mods.FlatDamage) * (1 + mods.DamagePct) * cfg.Combat.BlockMultiplier
			ApplyBlockDamage(ecs, block, hero, blockDamage(base, block, mods))
			acted = true
		}

		if acted {
			startCooldown(hero, tick, auraBonus(ecs, hero))
		}
	}
}

// heroMeleeDamage is the per-enemy damage of one hero attack. Crit and low
// health bonuses only apply here, never to impacts.
func heroMeleeDamage(ecs *ecs.ECS, hero *donburi.Entry, mods cfg.ModifierSet) (float64, bool) {
	dmg := (components.Attack.Get(hero).Damage + mods.FlatDamage) * (1 + mods.DamagePct)
	if components.Health.Get(hero).Ratio() < cfg.Combat.LowHealthThreshold {
		dmg *= 1 + mods.LowHealthDamagePct
	}
	crit := false
	if mods.CritChance > 0 && rng(ecs).Float64() < mods.CritChance {
		dmg *= cfg.Combat.CritMultiplier + mods.CritDamagePct
		crit = true
	}
	return dmg, crit
}

// auraBonus returns the strongest Bard aura covering the hero.
func auraBonus(ecs *ecs.ECS, hero *donburi.Entry) float64 {
	x, y := centerOf(hero)
	best := 0.0
	for _, h := range entriesWithin(ecs, x, y, cfg.Combat.AuraRadius, tags.ResolvHero) {
		if !isFielded(h.entry) {
			continue
		}
		data := components.Hero.Get(h.entry)
		if data.Config != nil && data.Config.AuraSpeedBonus > best {
			best = data.Config.AuraSpeedBonus
		}
	}
	return math.Min(best, 0.9)
}

type enemyBehavior func(ecs *ecs.ECS, enemy *donburi.Entry, tick uint64) bool

var enemyBehaviors = map[cfg.Behavior]enemyBehavior{
	cfg.BehaviorMelee:   meleeAttack,
	cfg.BehaviorRanged:  rangedAttack,
	cfg.BehaviorSupport: supportAction,
}

func updateEnemyAttacks(ecs *ecs.ECS, tick uint64) {
	for _, enemy := range snapshot(ecs.World, enemyQuery) {
		// A hero may have killed this enemy earlier in the tick.
		if !isActive(enemy) || !offCooldown(enemy, tick) {
			continue
		}

		var acted bool
		if components.Status.Get(enemy).Charm.Active {
			acted = charmedAttack(ecs, enemy)
		} else {
			behavior, ok := enemyBehaviors[components.Enemy.Get(enemy).Config.Behavior]
			if !ok {
				continue
			}
			acted = behavior(ecs, enemy, tick)
		}
		if acted {
			startCooldown(enemy, tick, 0)
		}
	}
}

func face(enemy, target *donburi.Entry) {
	ex, _ := centerOf(enemy)
	tx, _ := centerOf(target)
	if dir := tx - ex; dir != 0 {
		components.Enemy.Get(enemy).Facing = math.Copysign(1, dir)
	}
}

func nearestHeroInRange(ecs *ecs.ECS, enemy *donburi.Entry) *donburi.Entry {
	x, y := centerOf(enemy)
	return nearestWithin(ecs, x, y, components.Attack.Get(enemy).Range, isFielded, tags.ResolvHero)
}

func meleeAttack(ecs *ecs.ECS, enemy *donburi.Entry, _ uint64) bool {
	target := nearestHeroInRange(ecs, enemy)
	if target == nil {
		return false
	}
	face(enemy, target)
	applyDamage(ecs, target, enemy, components.Attack.Get(enemy).Damage, false)
	return true
}

func rangedAttack(ecs *ecs.ECS, enemy *donburi.Entry, _ uint64) bool {
	target := nearestHeroInRange(ecs, enemy)
	if target == nil {
		return false
	}
	face(enemy, target)

	conf := components.Enemy.Get(enemy).Config
	x, y := centerOf(enemy)
	tx, ty := centerOf(target)
	dx, dy := tx-x, ty-y
	d := math.Hypot(dx, dy)
	if d == 0 {
		dx, d = components.Enemy.Get(enemy).Facing, 1
	}
	factory.CreateProjectile(ecs, factory.ProjectileSpec{
		Faction:  cfg.FactionEnemy,
		Owner:    enemy.Entity(),
		X:        x,
		Y:        y,
		VelX:     dx / d * conf.ProjectileSpeed,
		VelY:     dy / d * conf.ProjectileSpeed,
		Damage:   components.Attack.Get(enemy).Damage,
		Radius:   conf.ProjectileRadius,
		Lifetime: conf.ProjectileLifetime,
		Poison:   conf.Poison,
		Slow:     conf.Slow,
	})
	return true
}

// supportAction heals the most injured ally in range, and falls back to a
// melee attack when nobody needs healing.
func supportAction(ecs *ecs.ECS, enemy *donburi.Entry, tick uint64) bool {
	conf := components.Enemy.Get(enemy).Config
	x, y := centerOf(enemy)

	var patient *donburi.Entry
	worst := 1.0
	for _, h := range entriesWithin(ecs, x, y, conf.HealRange, tags.ResolvEnemy) {
		if !isAlive(h.entry) {
			continue
		}
		if r := components.Health.Get(h.entry).Ratio(); r < worst {
			patient, worst = h.entry, r
		}
	}
	if patient != nil {
		Heal(ecs, patient, enemy, conf.HealAmount)
		return true
	}
	return meleeAttack(ecs, enemy, tick)
}

// charmedAttack hits the nearest other living enemy in range. A charmed
// enemy never attacks heroes.
func charmedAttack(ecs *ecs.ECS, enemy *donburi.Entry) bool {
	x, y := centerOf(enemy)
	target := nearestWithin(ecs, x, y, components.Attack.Get(enemy).Range, func(e *donburi.Entry) bool {
		return e.Entity() != enemy.Entity() && isAlive(e)
	}, tags.ResolvEnemy)
	if target == nil {
		return false
	}
	face(enemy, target)
	applyDamage(ecs, target, enemy, components.Attack.Get(enemy).Damage, false)
	return true
}
