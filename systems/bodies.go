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

// Resting bodies slower than this stop.
const restSpeed = 1.0

// UpdateBodies is a stand-in for the external physics layer used by headless
// runs: gravity, a flat ground and contact callbacks for flying heroes and
// moving blocks. Rushing enemies fly straight at their target.
func UpdateBodies(ecs *ecs.ECS) {
	dt := clock(ecs).Delta
	if dt <= 0 {
		return
	}
	groundY := cfg.World.GroundY
	if b := battleData(ecs); b != nil && b.GroundY > 0 {
		groundY = b.GroundY
	}

	for _, e := range snapshot(ecs.World, physicsQuery) {
		if e.HasComponent(components.Projectile) || e.HasComponent(components.Despawn) {
			continue
		}
		phys := components.Physics.Get(e)
		if !phys.Dynamic {
			continue
		}
		obj := components.Object.Get(e)

		rushing := e.HasComponent(components.Enemy) && isAlive(e) && stateOf(e) == cfg.StateRushing
		if !rushing {
			phys.VelY += cfg.World.Gravity * dt
		}
		speed := math.Hypot(phys.VelX, phys.VelY)

		obj.X = gamemath.Clamp(obj.X+phys.VelX*dt, 0, float64(cfg.World.Width)-obj.W)
		obj.Y += phys.VelY * dt

		grounded := obj.Y+obj.H >= groundY
		if grounded {
			obj.Y = groundY - obj.H
		}
		obj.Update()

		switch {
		case e.HasComponent(components.Hero):
			if isAlive(e) && stateOf(e) == cfg.StateFlying {
				heroContacts(ecs, e, speed, grounded)
			}
		case e.HasComponent(components.Block):
			if speed > cfg.Crush.MinSpeed {
				HandleCollision(ecs, e, nil, speed*phys.Mass*cfg.World.ImpactForceScale)
			}
		}

		if grounded && phys.VelY > 0 {
			phys.VelY = 0
		}
		if grounded && !rushing && !e.HasComponent(components.Hero) {
			phys.VelX *= math.Pow(cfg.World.Damping, dt)
			if math.Abs(phys.VelX) < restSpeed {
				phys.VelX = 0
				phys.Dynamic = false
			}
		}
	}
}

// heroContacts reports the first body a flying hero overlaps, or the ground.
func heroContacts(ecs *ecs.ECS, hero *donburi.Entry, speed float64, grounded bool) {
	phys := components.Physics.Get(hero)
	force := speed * phys.Mass * cfg.World.ImpactForceScale

	if other := firstContact(ecs, hero); other != nil {
		HandleCollision(ecs, hero, other, force)
	} else if grounded {
		HandleCollision(ecs, hero, nil, force)
	}

	if isAlive(hero) && stateOf(hero) == cfg.StateActive {
		phys.VelX = 0
		if phys.VelY < 0 {
			phys.VelY = 0
		}
	}
}

// firstContact returns the overlapping body nearest to the hero's centre.
func firstContact(ecs *ecs.ECS, hero *donburi.Entry) *donburi.Entry {
	obj := components.Object.Get(hero)
	ignore := components.Hero.Get(hero).IgnoreContact

	var best *donburi.Entry
	bestDist := math.Inf(1)
	for _, o := range objectsInRect(ecs, obj.X, obj.Y, obj.W, obj.H,
		tags.ResolvBlock, tags.ResolvEnemy, tags.ResolvBarrel) {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || e.Entity() == ignore || !touchable(e) {
			continue
		}
		if !gamemath.RectsOverlap(obj.X, obj.Y, obj.W, obj.H, o.X, o.Y, o.W, o.H) {
			continue
		}
		if d := gamemath.Distance(obj.CenterX(), obj.CenterY(), o.X+o.W/2, o.Y+o.H/2); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func touchable(e *donburi.Entry) bool {
	switch {
	case !e.Valid():
		return false
	case e.HasComponent(components.Block):
		return blockStanding(e)
	case e.HasComponent(components.Barrel):
		return !components.Barrel.Get(e).Exploded
	}
	return isAlive(e)
}
