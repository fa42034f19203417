package systems

import (
	"math"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/shared/gamemath"
	"github.com/krool/slingsquad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// updateAggro wakes idle enemies once a fielded hero is within aggro range.
// Rush types lock onto that hero and start moving.
func updateAggro(ecs *ecs.ECS) {
	for _, enemy := range snapshot(ecs.World, enemyQuery) {
		if !isAlive(enemy) || stateOf(enemy) != cfg.StateIdle {
			continue
		}
		data := components.Enemy.Get(enemy)
		x, y := centerOf(enemy)
		hero := nearestWithin(ecs, x, y, data.Config.AggroRange, isFielded, tags.ResolvHero)
		if hero == nil {
			continue
		}

		c := components.Combatant.Get(enemy)
		if data.Config.Behavior == cfg.BehaviorRush {
			c.State = cfg.StateRushing
			data.RushTarget = hero.Entity()
			components.Physics.Get(enemy).Dynamic = true
			continue
		}
		c.State = cfg.StateActive
	}
}

// UpdateHeroWalk steers active heroes toward the nearest enemy. A hero halts
// with an enemy in range or a block ahead, and turns around for a while when
// it stops making progress.
func UpdateHeroWalk(ecs *ecs.ECS) {
	dt := clock(ecs).Delta

	for _, hero := range snapshot(ecs.World, heroQuery) {
		if !isActive(hero) {
			continue
		}
		data := components.Hero.Get(hero)
		phys := components.Physics.Get(hero)
		obj := components.Object.Get(hero)
		x, y := centerOf(hero)

		if nearestWithin(ecs, x, y, components.Attack.Get(hero).Range, isAlive, tags.ResolvEnemy) != nil {
			halt(data, phys, obj.X)
			continue
		}
		target := nearestOf(ecs, enemyQuery, x, y, isAlive)
		if target == nil {
			halt(data, phys, obj.X)
			continue
		}

		tx, _ := centerOf(target)
		dir := gamemath.Sign(tx - x)
		if data.ReverseTimer > 0 {
			data.ReverseTimer -= dt
			dir = data.WalkDir
		}
		if dir == 0 || blockAhead(ecs, hero, dir) {
			halt(data, phys, obj.X)
			continue
		}

		data.WalkDir = dir
		phys.VelX = dir * data.Config.WalkSpeed

		if math.Abs(obj.X-data.AnchorX) > cfg.Walk.StuckEpsilon {
			data.AnchorX = obj.X
			data.StuckTimer = 0
			continue
		}
		data.StuckTimer += dt
		if data.StuckTimer >= cfg.Walk.StuckTimeout {
			data.WalkDir = -dir
			data.ReverseTimer = cfg.Walk.ReverseDuration
			data.StuckTimer = 0
		}
	}
}

func halt(data *components.HeroData, phys *components.PhysicsData, x float64) {
	data.WalkDir = 0
	data.StuckTimer = 0
	data.ReverseTimer = 0
	data.AnchorX = x
	phys.VelX = 0
}

// blockAhead probes a hero-sized box LookAhead pixels in the walking
// direction for a standing block.
func blockAhead(ecs *ecs.ECS, hero *donburi.Entry, dir float64) bool {
	obj := components.Object.Get(hero)
	px := obj.X + dir*cfg.Walk.LookAhead
	cx := obj.CenterX()

	for _, o := range objectsInRect(ecs, px, obj.Y, obj.W, obj.H, tags.ResolvBlock) {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !blockStanding(e) {
			continue
		}
		if !gamemath.RectsOverlap(px, obj.Y, obj.W, obj.H, o.X, o.Y, o.W, o.H) {
			continue
		}
		if (o.X+o.W/2-cx)*dir > 0 {
			return true
		}
	}
	return false
}

// UpdateRushers re-aims rushing enemies at their target every frame and
// detonates them on arrival. A lost target is replaced by the nearest
// fielded hero. Charmed rushers hunt the nearest other enemy instead and
// hold still when there is none.
func UpdateRushers(ecs *ecs.ECS) {
	for _, enemy := range snapshot(ecs.World, enemyQuery) {
		if !isAlive(enemy) || stateOf(enemy) != cfg.StateRushing {
			continue
		}
		data := components.Enemy.Get(enemy)
		phys := components.Physics.Get(enemy)
		x, y := centerOf(enemy)

		candidates, valid := heroQuery, isFieldedHero
		if components.Status.Get(enemy).Charm.Active {
			self := enemy.Entity()
			candidates = enemyQuery
			valid = func(e *donburi.Entry) bool {
				return isAlive(e) && e.HasComponent(components.Enemy) && e.Entity() != self
			}
		}

		target := entryOf(ecs.World, data.RushTarget)
		if !valid(target) {
			target = nearestOf(ecs, candidates, x, y, valid)
			data.RushTarget = entityOf(target)
		}
		if target == nil {
			phys.VelX, phys.VelY = 0, 0
			continue
		}

		var aim math2.Vec2
		aim.X, aim.Y = centerOf(target)
		if gamemath.Distance(x, y, aim.X, aim.Y) <= data.Config.DetonateRange {
			detonate(ecs, enemy)
			continue
		}
		phys.VelX, phys.VelY = gamemath.CalculateHomingVelocity(x, y, aim.X, aim.Y, data.Config.RushSpeed)
		if phys.VelX != 0 {
			data.Facing = gamemath.Sign(phys.VelX)
		}
	}
}

func isFieldedHero(e *donburi.Entry) bool {
	return isFielded(e) && e.HasComponent(components.Hero)
}

// detonate kills a rusher and sets off its blast. Self-detonation has no
// killer.
func detonate(ecs *ecs.ECS, enemy *donburi.Entry) {
	conf := components.Enemy.Get(enemy).Config
	x, y := centerOf(enemy)
	kill(ecs, enemy, nil)
	ResolveExplosion(ecs, x, y, conf.BlastRadius, conf.BlastDamage, enemy)
}
