package systems

import (
	"math/rand"
	"sort"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/shared/gamemath"
	"github.com/krool/slingsquad/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	heroQuery       = donburi.NewQuery(filter.Contains(tags.Hero))
	enemyQuery      = donburi.NewQuery(filter.Contains(tags.Enemy))
	blockQuery      = donburi.NewQuery(filter.Contains(tags.Block))
	projectileQuery = donburi.NewQuery(filter.Contains(tags.Projectile))
	statusQuery     = donburi.NewQuery(filter.Contains(components.Status))
	physicsQuery    = donburi.NewQuery(filter.Contains(components.Physics, components.Object))
	despawnQuery    = donburi.NewQuery(filter.Contains(components.Despawn))
)

// snapshot collects the query result first so systems can add components,
// spawn or kill entities while walking it.
func snapshot(w donburi.World, q *donburi.Query) []*donburi.Entry {
	var out []*donburi.Entry
	q.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func battleData(ecs *ecs.ECS) *components.BattleData {
	if e, ok := components.Battle.First(ecs.World); ok {
		return components.Battle.Get(e)
	}
	return nil
}

func modifiers(ecs *ecs.ECS) cfg.ModifierSet {
	if b := battleData(ecs); b != nil {
		return b.Modifiers
	}
	return cfg.ModifierSet{}
}

func rng(ecs *ecs.ECS) *rand.Rand {
	if b := battleData(ecs); b != nil && b.Rand != nil {
		return b.Rand
	}
	return rand.New(rand.NewSource(1))
}

func clock(ecs *ecs.ECS) *components.ClockData {
	if e, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(e)
	}
	return &components.ClockData{}
}

func currentTick(ecs *ecs.ECS) uint64 {
	return clock(ecs).Tick
}

func space(ecs *ecs.ECS) *resolv.Space {
	if e, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(e)
	}
	return nil
}

// entryOf resolves a stored entity reference, nil once it left the world.
func entryOf(w donburi.World, entity donburi.Entity) *donburi.Entry {
	if entity == donburi.Null || !w.Valid(entity) {
		return nil
	}
	return w.Entry(entity)
}

func entityOf(e *donburi.Entry) donburi.Entity {
	if e == nil {
		return donburi.Null
	}
	return e.Entity()
}

func centerOf(e *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(e)
	return obj.CenterX(), obj.CenterY()
}

func isAlive(e *donburi.Entry) bool {
	return e != nil && e.Valid() && e.HasComponent(components.Combatant) &&
		components.Combatant.Get(e).Alive()
}

func stateOf(e *donburi.Entry) cfg.StateID {
	return components.Combatant.Get(e).State
}

func isActive(e *donburi.Entry) bool {
	return isAlive(e) && stateOf(e) == cfg.StateActive
}

// isFielded reports a living hero that has left the slingshot.
func isFielded(e *donburi.Entry) bool {
	if !isAlive(e) {
		return false
	}
	s := stateOf(e)
	return s == cfg.StateFlying || s == cfg.StateActive
}

func blockStanding(e *donburi.Entry) bool {
	return e != nil && e.Valid() && e.HasComponent(components.Block) &&
		!components.Block.Get(e).Destroyed
}

func targetKind(e *donburi.Entry) cfg.TargetKind {
	switch {
	case e.HasComponent(components.Hero):
		return cfg.TargetHero
	case e.HasComponent(components.Block):
		return cfg.TargetBlock
	case e.HasComponent(components.Barrel):
		return cfg.TargetBarrel
	}
	return cfg.TargetEnemy
}

func className(e *donburi.Entry) string {
	switch {
	case e.HasComponent(components.Hero):
		return string(components.Hero.Get(e).Class)
	case e.HasComponent(components.Enemy):
		return string(components.Enemy.Get(e).Class)
	}
	return ""
}

// areaHit is an entry found by a radius query and its centre distance.
type areaHit struct {
	entry *donburi.Entry
	dist  float64
}

// objectsInRect runs the space broadphase over a rectangle using a
// temporary probe body.
func objectsInRect(ecs *ecs.ECS, x, y, w, h float64, resolvTags ...string) []*resolv.Object {
	sp := space(ecs)
	if sp == nil || w <= 0 || h <= 0 {
		return nil
	}
	probe := resolv.NewObject(x, y, w, h, tags.ResolvQuery)
	sp.Add(probe)
	defer sp.Remove(probe)

	check := probe.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}
	return check.Objects
}

// entriesWithin returns entries whose body centre lies strictly within r of
// (x, y), nearest first.
func entriesWithin(ecs *ecs.ECS, x, y, r float64, resolvTags ...string) []areaHit {
	if r <= 0 {
		return nil
	}
	var hits []areaHit
	for _, o := range objectsInRect(ecs, x-r, y-r, r*2, r*2, resolvTags...) {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || e == nil || !e.Valid() {
			continue
		}
		d := gamemath.Distance(x, y, o.X+o.W/2, o.Y+o.H/2)
		if d >= r {
			continue
		}
		hits = append(hits, areaHit{entry: e, dist: d})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].dist < hits[j].dist
	})
	return hits
}

// nearestWithin returns the closest entry within r accepted by keep.
func nearestWithin(ecs *ecs.ECS, x, y, r float64, keep func(*donburi.Entry) bool, resolvTags ...string) *donburi.Entry {
	for _, h := range entriesWithin(ecs, x, y, r, resolvTags...) {
		if keep(h.entry) {
			return h.entry
		}
	}
	return nil
}

// nearestOf scans a query without a range limit.
func nearestOf(ecs *ecs.ECS, q *donburi.Query, x, y float64, keep func(*donburi.Entry) bool) *donburi.Entry {
	var best *donburi.Entry
	bestDist := 0.0
	q.Each(ecs.World, func(e *donburi.Entry) {
		if !keep(e) {
			return
		}
		ex, ey := centerOf(e)
		d := gamemath.Distance(x, y, ex, ey)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	})
	return best
}

func markForDespawn(e *donburi.Entry) {
	if e.HasComponent(components.Despawn) {
		return
	}
	donburi.Add(e, components.Despawn, &components.DespawnData{Frames: cfg.Combat.DespawnFrames})
}
