package systems

import (
	"math"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/events"
	"github.com/krool/slingsquad/shared/gamemath"
	"github.com/krool/slingsquad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Explode detonates a barrel once. Later calls return false and do nothing.
func Explode(ecs *ecs.ECS, barrel *donburi.Entry) bool {
	if barrel == nil || !barrel.Valid() || !barrel.HasComponent(components.Barrel) {
		return false
	}
	b := components.Barrel.Get(barrel)
	if b.Exploded {
		return false
	}
	b.Exploded = true
	b.Primed = false
	markForDespawn(barrel)
	tally(ecs, func(t *components.TallyData) { t.BarrelsExploded++ })

	x, y := centerOf(barrel)
	events.DestroyedEvent.Publish(ecs.World, events.Destroyed{
		Entity: barrel.Entity(),
		Kind:   cfg.TargetBarrel,
		X:      x,
		Y:      y,
	})

	mods := modifiers(ecs)
	ResolveExplosion(ecs, x, y,
		b.Radius+mods.ExplosionRadiusBonus,
		b.Damage*(1+mods.ExplosionDamagePct),
		barrel,
	)
	return true
}

// ResolveExplosion damages everything within radius with linear falloff,
// pushes blocks and enemies outward with quadratic falloff and schedules
// nearby barrels to go off a few ticks later.
func ResolveExplosion(ecs *ecs.ECS, x, y, radius, damage float64, source *donburi.Entry) {
	if radius <= 0 {
		return
	}
	events.ExplosionEvent.Publish(ecs.World, events.Explosion{
		Source: entityOf(source),
		X:      x,
		Y:      y,
		Radius: radius,
		Damage: damage,
	})

	for _, h := range entriesWithin(ecs, x, y, radius, tags.ResolvBlock, tags.ResolvAllyBlock) {
		if !blockStanding(h.entry) {
			continue
		}
		ApplyBlockDamage(ecs, h.entry, source, gamemath.LinearFalloff(damage, h.dist, radius))
		if blockStanding(h.entry) {
			push(x, y, radius, h)
		}
	}

	for _, h := range entriesWithin(ecs, x, y, radius, tags.ResolvEnemy) {
		if !isAlive(h.entry) || h.entry.Entity() == entityOf(source) {
			continue
		}
		applyDamage(ecs, h.entry, source, gamemath.LinearFalloff(damage, h.dist, radius), false)
		if isAlive(h.entry) {
			push(x, y, radius, h)
		}
	}

	for _, h := range entriesWithin(ecs, x, y, radius, tags.ResolvHero) {
		if !isFielded(h.entry) {
			continue
		}
		applyDamage(ecs, h.entry, source, gamemath.LinearFalloff(damage, h.dist, radius), false)
	}

	tick := currentTick(ecs)
	for _, h := range entriesWithin(ecs, x, y, radius, tags.ResolvBarrel) {
		b := components.Barrel.Get(h.entry)
		if b.Exploded || b.Primed || h.entry.Entity() == entityOf(source) {
			continue
		}
		b.Primed = true
		scheduleChain(ecs, h.entry, tick+max(1, cfg.Explosion.ChainDelayTicks))
	}
}

func push(x, y, radius float64, h areaHit) {
	force := gamemath.QuadraticFalloff(cfg.Explosion.ImpulseForce, h.dist, radius)
	if force <= 0 {
		return
	}
	dx, dy := outward(x, y, h.entry)
	components.Physics.Get(h.entry).ApplyImpulse(dx*force, dy*force)
}

// ResolveCrush lets a falling or thrown block hurt whatever it lands on.
// Blocks slower than the crush threshold do nothing, so bodies overlapping
// at spawn never crush. It returns the number of combatants hit.
func ResolveCrush(ecs *ecs.ECS, block *donburi.Entry) int {
	if !blockStanding(block) {
		return 0
	}
	phys := components.Physics.Get(block)
	if math.Hypot(phys.VelX, phys.VelY) <= cfg.Crush.MinSpeed {
		return 0
	}

	b := components.Block.Get(block)
	tick := currentTick(ecs)
	if b.HasCrushed && tick < b.LastCrushTick+cfg.Crush.CooldownTicks {
		return 0
	}

	x, y := centerOf(block)
	hits := 0
	for _, h := range entriesWithin(ecs, x, y, cfg.Crush.Radius, tags.ResolvHero, tags.ResolvEnemy) {
		if h.entry.HasComponent(components.Hero) && !isFielded(h.entry) {
			continue
		}
		if !isAlive(h.entry) {
			continue
		}
		if applyDamage(ecs, h.entry, nil, cfg.Crush.Damage, false) > 0 {
			hits++
		}
	}
	b.HasCrushed = true
	b.LastCrushTick = tick
	return hits
}
