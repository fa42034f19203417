package systems

import (
	"math"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/shared/gamemath"
	"github.com/krool/slingsquad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every projectile along its velocity and applies the
// first hit on the swept path. Projectiles stop at the first living target of
// the opposing faction; enemy shots are also absorbed by ally blocks.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := clock(ecs).Delta
	if dt <= 0 {
		return
	}

	for _, p := range snapshot(ecs.World, projectileQuery) {
		proj := components.Projectile.Get(p)
		if proj.Destroyed {
			continue
		}
		phys := components.Physics.Get(p)
		obj := components.Object.Get(p)

		x0, y0 := obj.CenterX(), obj.CenterY()
		x1, y1 := x0+phys.VelX*dt, y0+phys.VelY*dt

		if target := sweepHit(ecs, proj, x0, y0, x1, y1); target != nil {
			hitProjectile(ecs, p, proj, target)
			continue
		}

		obj.X += x1 - x0
		obj.Y += y1 - y0
		obj.Update()

		proj.Lifetime -= dt
		if proj.Lifetime <= 0 {
			destroyProjectile(p, proj)
		}
	}
}

// sweepHit returns the earliest qualifying entry touched by the segment.
func sweepHit(ecs *ecs.ECS, proj *components.ProjectileData, x0, y0, x1, y1 float64) *donburi.Entry {
	var targetTags []string
	if proj.Faction == cfg.FactionHero {
		targetTags = []string{tags.ResolvEnemy}
	} else {
		targetTags = []string{tags.ResolvHero, tags.ResolvAllyBlock}
	}

	r := proj.Radius
	minX, minY := math.Min(x0, x1)-r, math.Min(y0, y1)-r
	maxX, maxY := math.Max(x0, x1)+r, math.Max(y0, y1)+r

	var best *donburi.Entry
	bestT := math.Inf(1)
	for _, o := range objectsInRect(ecs, minX, minY, maxX-minX, maxY-minY, targetTags...) {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !canBeHit(e, proj.Faction) {
			continue
		}
		t, hit := gamemath.SegmentHitsRect(x0, y0, x1, y1, o.X, o.Y, o.W, o.H, r)
		if hit && t < bestT {
			best, bestT = e, t
		}
	}
	return best
}

func canBeHit(e *donburi.Entry, faction cfg.Faction) bool {
	if e == nil || !e.Valid() {
		return false
	}
	if e.HasComponent(components.Block) {
		return faction == cfg.FactionEnemy && blockStanding(e)
	}
	if faction == cfg.FactionHero {
		return e.HasComponent(components.Enemy) && isAlive(e)
	}
	return e.HasComponent(components.Hero) && isFielded(e)
}

func hitProjectile(ecs *ecs.ECS, p *donburi.Entry, proj *components.ProjectileData, target *donburi.Entry) {
	owner := entryOf(ecs.World, proj.Owner)

	applyDamage(ecs, target, owner, proj.Damage, false)
	if isAlive(target) {
		if proj.Slow != nil {
			ApplySlow(ecs, target, owner, *proj.Slow)
		}
		if proj.Poison != nil {
			ApplyPoison(ecs, target, owner, *proj.Poison)
		}
	}
	destroyProjectile(p, proj)
}

func destroyProjectile(p *donburi.Entry, proj *components.ProjectileData) {
	proj.Destroyed = true
	components.Physics.Get(p).VelX = 0
	components.Physics.Get(p).VelY = 0
	markForDespawn(p)
}
