package systems

import (
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/events"
	"github.com/krool/slingsquad/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyDamage removes amount from target's health and returns what was
// actually removed. Dead combatants, destroyed blocks and non-positive
// amounts are ignored. Source may be nil.
func ApplyDamage(ecs *ecs.ECS, target, source *donburi.Entry, amount float64) float64 {
	return applyDamage(ecs, target, source, amount, false)
}

func applyDamage(ecs *ecs.ECS, target, source *donburi.Entry, amount float64, crit bool) float64 {
	if target == nil || !target.Valid() || amount <= 0 {
		return 0
	}
	if target.HasComponent(components.Block) {
		return ApplyBlockDamage(ecs, target, source, amount)
	}
	if !isAlive(target) {
		return 0
	}

	hp := components.Health.Get(target)
	old := hp.Current
	hp.Current = gamemath.Clamp(old-amount, 0, hp.Max)
	dealt := old - hp.Current
	if dealt <= 0 {
		return 0
	}

	recordDamage(target, source, dealt)
	x, y := centerOf(target)
	events.DamageAppliedEvent.Publish(ecs.World, events.DamageApplied{
		Target: target.Entity(),
		Source: entityOf(source),
		Kind:   targetKind(target),
		X:      x,
		Y:      y,
		Amount: dealt,
		Crit:   crit,
	})

	if hp.Current <= 0 {
		kill(ecs, target, source)
	}
	reflectThorns(ecs, target, source, dealt)
	return dealt
}

// reflectThorns sends a share of the damage an enemy dealt to a hero back
// to that enemy.
func reflectThorns(ecs *ecs.ECS, target, source *donburi.Entry, dealt float64) {
	pct := modifiers(ecs).ThornsPct
	if pct <= 0 || !isAlive(source) {
		return
	}
	if components.Combatant.Get(target).Faction != cfg.FactionHero ||
		components.Combatant.Get(source).Faction != cfg.FactionEnemy {
		return
	}
	applyDamage(ecs, source, target, dealt*pct, false)
}

func recordDamage(target, source *donburi.Entry, dealt float64) {
	if target.HasComponent(components.Stats) {
		components.Stats.Get(target).DamageTaken += dealt
	}
	if source != nil && source.Valid() && source.HasComponent(components.Stats) {
		components.Stats.Get(source).DamageDealt += dealt
	}
}

// kill moves a combatant into the dead state. A hero with resurrect left
// comes straight back instead.
func kill(ecs *ecs.ECS, e, killer *donburi.Entry) {
	c := components.Combatant.Get(e)
	wasFlying := c.State == cfg.StateFlying
	c.State = cfg.StateDead

	if e.HasComponent(components.Hero) {
		hero := components.Hero.Get(e)
		pct := modifiers(ecs).ResurrectPct
		if pct > 0 && !hero.Revived && !hero.Summoned {
			hero.Revived = true
			Revive(ecs, e, pct)
			// A hero revived mid-flight still has its landing impact to resolve.
			if wasFlying {
				c.State = cfg.StateFlying
			}
			return
		}
	}

	components.Status.SetValue(e, components.StatusData{})
	phys := components.Physics.Get(e)
	phys.VelX, phys.VelY = 0, 0

	if killer != nil && killer.Valid() && killer.Entity() != e.Entity() && killer.HasComponent(components.Stats) {
		components.Stats.Get(killer).Kills++
	}
	tally(ecs, func(t *components.TallyData) {
		if c.Faction == cfg.FactionEnemy {
			t.EnemiesKilled++
		} else {
			t.HeroesLost++
		}
	})

	x, y := centerOf(e)
	events.EntityDiedEvent.Publish(ecs.World, events.EntityDied{
		Entity:  e.Entity(),
		Killer:  entityOf(killer),
		Faction: c.Faction,
		Class:   className(e),
		X:       x,
		Y:       y,
	})

	// Launched heroes stay in the world so they can be revived
	if c.Faction == cfg.FactionEnemy || components.Hero.Get(e).Summoned {
		markForDespawn(e)
	}
}

// Revive brings a dead hero back with fraction of its max health. It is the
// only way out of the dead state.
func Revive(ecs *ecs.ECS, e *donburi.Entry, fraction float64) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Hero) || e.HasComponent(components.Despawn) {
		return false
	}
	c := components.Combatant.Get(e)
	if c.State != cfg.StateDead || fraction <= 0 {
		return false
	}

	hp := components.Health.Get(e)
	hp.Current = gamemath.Clamp(hp.Max*fraction, 1, hp.Max)
	c.State = cfg.StateActive

	x, y := centerOf(e)
	events.StatusAppliedEvent.Publish(ecs.World, events.StatusApplied{
		Target: e.Entity(),
		Source: e.Entity(),
		Kind:   cfg.StatusRevive,
		X:      x,
		Y:      y,
		Amount: hp.Current,
	})
	return true
}

// Heal restores up to amount health on a living combatant.
func Heal(ecs *ecs.ECS, target, source *donburi.Entry, amount float64) float64 {
	if !isAlive(target) || amount <= 0 {
		return 0
	}
	hp := components.Health.Get(target)
	old := hp.Current
	hp.Current = gamemath.Clamp(old+amount, 0, hp.Max)
	healed := hp.Current - old
	if healed <= 0 {
		return 0
	}

	if source != nil && source.Valid() && source.HasComponent(components.Stats) {
		components.Stats.Get(source).Healing += healed
	}
	x, y := centerOf(target)
	events.StatusAppliedEvent.Publish(ecs.World, events.StatusApplied{
		Target: target.Entity(),
		Source: entityOf(source),
		Kind:   cfg.StatusHeal,
		X:      x,
		Y:      y,
		Amount: healed,
	})
	return healed
}

// ApplyBlockDamage damages a block. Damage to a destroyed block is a no-op
// and destruction happens exactly once.
func ApplyBlockDamage(ecs *ecs.ECS, block, source *donburi.Entry, amount float64) float64 {
	if !blockStanding(block) || amount <= 0 {
		return 0
	}

	hp := components.Health.Get(block)
	old := hp.Current
	hp.Current = gamemath.Clamp(old-amount, 0, hp.Max)
	dealt := old - hp.Current
	if dealt <= 0 {
		return 0
	}

	if source != nil && source.Valid() && source.HasComponent(components.Stats) {
		components.Stats.Get(source).DamageDealt += dealt
	}
	x, y := centerOf(block)
	events.DamageAppliedEvent.Publish(ecs.World, events.DamageApplied{
		Target: block.Entity(),
		Source: entityOf(source),
		Kind:   cfg.TargetBlock,
		X:      x,
		Y:      y,
		Amount: dealt,
	})

	if hp.Current <= 0 {
		destroyBlock(ecs, block)
	}
	return dealt
}

func destroyBlock(ecs *ecs.ECS, block *donburi.Entry) {
	b := components.Block.Get(block)
	if b.Destroyed {
		return
	}
	b.Destroyed = true
	markForDespawn(block)
	if !b.Ally {
		tally(ecs, func(t *components.TallyData) { t.BlocksDestroyed++ })
	}

	x, y := centerOf(block)
	events.DestroyedEvent.Publish(ecs.World, events.Destroyed{
		Entity: block.Entity(),
		Kind:   cfg.TargetBlock,
		X:      x,
		Y:      y,
	})
}

// blockDamage applies material multipliers and the ModifierSet material bonus.
func blockDamage(amount float64, block *donburi.Entry, mods cfg.ModifierSet) float64 {
	mat := components.Block.Get(block).Material
	mult := 1.0
	if m, ok := cfg.Materials[mat]; ok {
		mult = m.DamageMultiplier
	}
	return amount * mult * (1 + mods.MaterialDamagePct(mat))
}

func tally(ecs *ecs.ECS, fn func(t *components.TallyData)) {
	if e, ok := components.Tally.First(ecs.World); ok {
		fn(components.Tally.Get(e))
	}
}
