package systems

import (
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/events"
	"github.com/krool/slingsquad/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LaunchAim is the slingshot input: an angle in radians (screen space, y
// down) and a power in [0,1].
type LaunchAim struct {
	Angle float64
	Power float64
}

func launcher(ecs *ecs.ECS) *components.LauncherData {
	if e, ok := components.Launcher.First(ecs.World); ok {
		return components.Launcher.Get(e)
	}
	return nil
}

// Launch fires the next queued hero. It returns false while the launch
// cooldown runs or when no idle hero is left.
func Launch(ecs *ecs.ECS, aim LaunchAim) (*donburi.Entry, bool) {
	l := launcher(ecs)
	if l == nil {
		return nil, false
	}
	c := clock(ecs)
	if c.Elapsed < l.CooldownUntil {
		return nil, false
	}

	hero := nextQueued(ecs)
	if hero == nil {
		return nil, false
	}

	data := components.Hero.Get(hero)
	data.Launched = true
	data.FirstLaunch = l.LaunchCount == 0
	l.LaunchCount++
	components.Combatant.Get(hero).State = cfg.StateFlying

	phys := components.Physics.Get(hero)
	phys.VelX, phys.VelY = gamemath.CalculateLaunchVelocity(aim.Angle, aim.Power,
		cfg.Launch.MinSpeed, cfg.Launch.MaxSpeed, data.Config.LaunchSpeedMultiplier)
	phys.Dynamic = true

	l.CooldownUntil = c.Elapsed + cfg.Launch.Cooldown*(1-modifiers(ecs).LaunchCooldownPct)

	events.LaunchedEvent.Publish(ecs.World, events.Launched{
		Hero:       hero.Entity(),
		Class:      data.Class,
		QueueIndex: data.QueueIndex,
		VelX:       phys.VelX,
		VelY:       phys.VelY,
	})
	return hero, true
}

// nextQueued returns the idle queued hero with the lowest queue index.
func nextQueued(ecs *ecs.ECS) *donburi.Entry {
	var next *donburi.Entry
	heroQuery.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Hero.Get(e)
		if data.Summoned || data.Launched || stateOf(e) != cfg.StateIdle {
			return
		}
		if next == nil || data.QueueIndex < components.Hero.Get(next).QueueIndex {
			next = e
		}
	})
	return next
}

// AllLaunched reports whether every queued hero has left idle at least once.
func AllLaunched(ecs *ecs.ECS) bool {
	queued := 0
	all := true
	heroQuery.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Hero.Get(e)
		if data.Summoned {
			return
		}
		queued++
		if !data.Launched {
			all = false
		}
	})
	return queued > 0 && all
}

// HeroesInFlight counts heroes still waiting for their impact.
func HeroesInFlight(ecs *ecs.ECS) int {
	n := 0
	heroQuery.Each(ecs.World, func(e *donburi.Entry) {
		if isAlive(e) && stateOf(e) == cfg.StateFlying {
			n++
		}
	})
	return n
}

// HandleCollision is the physics contact callback. Either body may be nil
// for static geometry such as the ground. A moving block crushes what it
// touches. A flying hero resolves its impact and, unless it pierced, lands in
// the active state.
func HandleCollision(ecs *ecs.ECS, a, b *donburi.Entry, impactForce float64) {
	pairs := [2][2]*donburi.Entry{{a, b}, {b, a}}

	// Crush first so knockback from this same contact does not count.
	for _, pair := range pairs {
		if self := pair[0]; self != nil && self.Valid() && self.HasComponent(components.Block) {
			ResolveCrush(ecs, self)
		}
	}

	for _, pair := range pairs {
		self, other := pair[0], pair[1]
		if self == nil || !self.Valid() || !self.HasComponent(components.Hero) {
			continue
		}
		if !isAlive(self) || stateOf(self) != cfg.StateFlying {
			continue
		}
		data := components.Hero.Get(self)
		if other != nil && other.Entity() == data.IgnoreContact {
			continue
		}
		res := ResolveImpact(ecs, self, impactForce)
		if res.Pierced {
			data.IgnoreContact = entityOf(other)
			continue
		}
		if isAlive(self) {
			components.Combatant.Get(self).State = cfg.StateActive
			data.AnchorX = components.Object.Get(self).X
		}
	}
}

// CountAlive returns the living heroes, queued ones included, and the living
// enemies.
func CountAlive(ecs *ecs.ECS) (heroes, enemies int) {
	heroQuery.Each(ecs.World, func(e *donburi.Entry) {
		if isAlive(e) {
			heroes++
		}
	})
	enemyQuery.Each(ecs.World, func(e *donburi.Entry) {
		if isAlive(e) {
			enemies++
		}
	})
	return heroes, enemies
}
