package battle

import (
	"github.com/krool/slingsquad/events"
	"github.com/yohamta/donburi"
)

// Hooks are called when the battle flushes its events: at the end of Update,
// Launch and Collide.

func (b *Battle) OnLaunch(fn func(events.Launched)) {
	events.LaunchedEvent.Subscribe(b.ecs.World, func(_ donburi.World, ev events.Launched) {
		fn(ev)
	})
}

func (b *Battle) OnDamage(fn func(events.DamageApplied)) {
	events.DamageAppliedEvent.Subscribe(b.ecs.World, func(_ donburi.World, ev events.DamageApplied) {
		fn(ev)
	})
}

func (b *Battle) OnDeath(fn func(events.EntityDied)) {
	events.EntityDiedEvent.Subscribe(b.ecs.World, func(_ donburi.World, ev events.EntityDied) {
		fn(ev)
	})
}

func (b *Battle) OnDestroyed(fn func(events.Destroyed)) {
	events.DestroyedEvent.Subscribe(b.ecs.World, func(_ donburi.World, ev events.Destroyed) {
		fn(ev)
	})
}

func (b *Battle) OnExplosion(fn func(events.Explosion)) {
	events.ExplosionEvent.Subscribe(b.ecs.World, func(_ donburi.World, ev events.Explosion) {
		fn(ev)
	})
}

func (b *Battle) OnStatus(fn func(events.StatusApplied)) {
	events.StatusAppliedEvent.Subscribe(b.ecs.World, func(_ donburi.World, ev events.StatusApplied) {
		fn(ev)
	})
}
