package systems

import (
	"math"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/shared/gamemath"
	"github.com/krool/slingsquad/systems/factory"
	"github.com/krool/slingsquad/tags"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ImpactResult summarises a resolved hero impact.
type ImpactResult struct {
	Resolved   bool
	Pierced    bool // hero keeps flying
	BaseDamage float64
	Radius     float64
	Hits       int
}

// impact carries one resolution through its class handler.
type impact struct {
	ecs    *ecs.ECS
	hero   *donburi.Entry
	data   *components.HeroData
	class  *cfg.HeroTypeConfig
	mods   cfg.ModifierSet
	tick   uint64
	x, y   float64
	radius float64
	damage float64

	hit    map[donburi.Entity]bool
	result ImpactResult
}

type impactHandler func(im *impact)

var impactHandlers = map[cfg.HeroClass]impactHandler{
	cfg.Warrior:     warriorImpact,
	cfg.Ranger:      rangerImpact,
	cfg.Mage:        mageImpact,
	cfg.Priest:      priestImpact,
	cfg.Bard:        bardImpact,
	cfg.Rogue:       rogueImpact,
	cfg.Engineer:    engineerImpact,
	cfg.Necromancer: necromancerImpact,
}

// ImpactBaseDamage converts an impact force into the hero's base impact damage.
func ImpactBaseDamage(force float64, class *cfg.HeroTypeConfig, firstLaunch bool) float64 {
	if force < 0 {
		force = 0
	}
	base := math.Min(cfg.Impact.DamageCap, force*cfg.Impact.ForceScale+cfg.Impact.DamageFloor)
	base *= class.DamageMultiplier
	if firstLaunch {
		base *= 1 + class.FirstLaunchBonusPct
	}
	return base
}

// ResolveImpact applies a flying hero's one-shot impact. It does nothing
// unless the hero is flying; moving the hero out of flying is up to the
// caller.
func ResolveImpact(ecs *ecs.ECS, hero *donburi.Entry, impactForce float64) ImpactResult {
	if hero == nil || !hero.Valid() || !hero.HasComponent(components.Hero) {
		return ImpactResult{}
	}
	if !isAlive(hero) || stateOf(hero) != cfg.StateFlying {
		return ImpactResult{}
	}

	data := components.Hero.Get(hero)
	class := data.Config
	if class == nil {
		c := cfg.Heroes.Types[data.Class]
		class = &c
	}
	mods := modifiers(ecs)
	x, y := centerOf(hero)

	im := &impact{
		ecs:    ecs,
		hero:   hero,
		data:   data,
		class:  class,
		mods:   mods,
		tick:   currentTick(ecs),
		x:      x,
		y:      y,
		radius: class.ImpactRadius + mods.ImpactRadiusBonus,
		damage: ImpactBaseDamage(impactForce, class, data.FirstLaunch),
		hit:    map[donburi.Entity]bool{},
	}
	im.result = ImpactResult{Resolved: true, BaseDamage: im.damage, Radius: im.radius}

	handler, ok := impactHandlers[data.Class]
	if !ok {
		handler = baseImpact
	}
	handler(im)
	return im.result
}

func baseImpact(im *impact) {
	im.areaDamage(nil)
}

// areaDamage applies linear falloff damage to blocks and enemies in the
// impact radius and sets off barrels inside it. enemyMult may scale the
// damage per enemy.
func (im *impact) areaDamage(enemyMult func(enemy *donburi.Entry) float64) (blocks, enemies []areaHit) {
	for _, h := range entriesWithin(im.ecs, im.x, im.y, im.radius, tags.ResolvBlock) {
		if !blockStanding(h.entry) {
			continue
		}
		dmg := blockDamage(gamemath.LinearFalloff(im.damage, h.dist, im.radius), h.entry, im.mods)
		if ApplyBlockDamage(im.ecs, h.entry, im.hero, dmg) > 0 {
			im.result.Hits++
		}
		blocks = append(blocks, h)
	}

	for _, h := range entriesWithin(im.ecs, im.x, im.y, im.radius, tags.ResolvEnemy) {
		if !isAlive(h.entry) {
			continue
		}
		dmg := gamemath.LinearFalloff(im.damage, h.dist, im.radius)
		if enemyMult != nil {
			dmg *= enemyMult(h.entry)
		}
		if applyDamage(im.ecs, h.entry, im.hero, dmg, false) > 0 {
			im.result.Hits++
		}
		im.hit[h.entry.Entity()] = true
		enemies = append(enemies, h)
	}

	for _, h := range entriesWithin(im.ecs, im.x, im.y, im.radius, tags.ResolvBarrel) {
		Explode(im.ecs, h.entry)
	}
	return blocks, enemies
}

// outward returns the unit vector from the impact point to an entry, straight
// up when they coincide.
func outward(fromX, fromY float64, e *donburi.Entry) (float64, float64) {
	ex, ey := centerOf(e)
	dx, dy := ex-fromX, ey-fromY
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, -1
	}
	return dx / d, dy / d
}

func warriorImpact(im *impact) {
	blocks, _ := im.areaDamage(nil)
	for _, h := range blocks {
		if !blockStanding(h.entry) {
			continue
		}
		force := gamemath.EasedFalloff(ease.Linear, im.class.KnockbackForce, h.dist, im.radius)
		dx, dy := outward(im.x, im.y, h.entry)
		components.Physics.Get(h.entry).ApplyImpulse(dx*force, dy*force)
	}
}

func rangerImpact(im *impact) {
	if im.data.PierceLeft > 0 {
		im.data.PierceLeft--
		im.result.Pierced = true
		im.areaDamage(nil)
		return
	}
	im.areaDamage(nil)

	phys := components.Physics.Get(im.hero)
	for _, dir := range gamemath.FanDirections(phys.VelX, phys.VelY, im.class.VolleyCount, im.class.VolleySpread) {
		factory.CreateProjectile(im.ecs, factory.ProjectileSpec{
			Faction:  cfg.FactionHero,
			Owner:    im.hero.Entity(),
			X:        im.x,
			Y:        im.y,
			VelX:     dir[0] * im.class.VolleySpeed,
			VelY:     dir[1] * im.class.VolleySpeed,
			Damage:   im.class.VolleyDamage,
			Radius:   im.class.ProjectileRadius,
			Lifetime: im.class.VolleyLifetime,
		})
	}
}

// mageImpact chains to extra enemies outside the radius, nearest first.
func mageImpact(im *impact) {
	im.areaDamage(nil)

	chained := 0
	for _, h := range entriesWithin(im.ecs, im.x, im.y, im.class.ChainRange, tags.ResolvEnemy) {
		if chained >= im.class.ChainTargets {
			break
		}
		if im.hit[h.entry.Entity()] || !isAlive(h.entry) {
			continue
		}
		if applyDamage(im.ecs, h.entry, im.hero, im.damage*im.class.ChainFraction, false) > 0 {
			im.result.Hits++
		}
		im.hit[h.entry.Entity()] = true
		chained++
	}
}

func priestImpact(im *impact) {
	im.areaDamage(nil)

	amount := im.class.HealAmount * (1 + im.mods.HealPct)
	for _, h := range entriesWithin(im.ecs, im.x, im.y, im.class.HealRadius, tags.ResolvHero) {
		if h.entry.Entity() == im.hero.Entity() || isFielded(h.entry) {
			Heal(im.ecs, h.entry, im.hero, amount)
		}
	}
}

func bardImpact(im *impact) {
	_, enemies := im.areaDamage(nil)

	ticks := im.class.CharmTicks + im.mods.CharmTicksBonus
	for _, h := range enemies {
		if !isAlive(h.entry) {
			continue
		}
		applyCharm(im.ecs, h.entry, im.hero, ticks)
	}
}

// rogueImpact multiplies damage against enemies facing away from the
// direction the rogue arrives from.
func rogueImpact(im *impact) {
	approach := gamemath.Sign(components.Physics.Get(im.hero).VelX)
	im.areaDamage(func(enemy *donburi.Entry) float64 {
		dir := approach
		if dir == 0 {
			ex, _ := centerOf(enemy)
			dir = gamemath.Sign(ex - im.x)
		}
		if dir != 0 && dir == components.Enemy.Get(enemy).Facing {
			return im.class.BackstabMultiplier
		}
		return 1
	})
}

func engineerImpact(im *impact) {
	im.areaDamage(nil)

	size := im.class.AllyBlockSize
	n := im.class.AllyBlockCount
	obj := components.Object.Get(im.hero)
	bottom := obj.Y + obj.H
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * size * 1.5
		factory.CreateAllyBlock(im.ecs,
			im.x+offset-size/2, bottom-size,
			size, im.class.AllyBlockHealth,
			im.tick+im.class.AllyBlockTicks,
		)
	}
}

func necromancerImpact(im *impact) {
	im.areaDamage(nil)

	minion := cfg.Heroes.Types[cfg.Minion]
	obj := components.Object.Get(im.hero)
	bottom := obj.Y + obj.H
	for i := 0; i < im.class.MinionCount; i++ {
		side := 1.0
		if i%2 == 1 {
			side = -1
		}
		offset := side * (minion.Width + 4) * float64(i/2+1)
		factory.CreateMinion(im.ecs, im.x+offset-minion.Width/2, bottom-minion.Height)
	}
}

// applyCharm turns an enemy against its allies until the charm expires.
func applyCharm(ecs *ecs.ECS, enemy, source *donburi.Entry, ticks uint64) {
	if ticks == 0 {
		return
	}
	st := components.Status.Get(enemy)
	st.Charm = components.TimedStatus{Active: true, ExpiresAtTick: currentTick(ecs) + ticks}

	if stateOf(enemy) == cfg.StateIdle {
		data := components.Enemy.Get(enemy)
		if data.Config.Behavior == cfg.BehaviorRush {
			// Rushers pick their own target in UpdateRushers
			components.Combatant.Get(enemy).State = cfg.StateRushing
			data.RushTarget = donburi.Null
			components.Physics.Get(enemy).Dynamic = true
		} else {
			components.Combatant.Get(enemy).State = cfg.StateActive
		}
	}

	publishStatus(ecs, enemy, source, cfg.StatusCharm, 0, ticks)
}
