package systems

import (
	"github.com/krool/slingsquad/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func scheduleChain(ecs *ecs.ECS, barrel *donburi.Entry, due uint64) {
	e, ok := components.Scheduler.First(ecs.World)
	if !ok {
		// No queue outside a battle: detonate right away.
		Explode(ecs, barrel)
		return
	}
	s := components.Scheduler.Get(e)
	s.Tasks = append(s.Tasks, components.ChainTask{DueTick: due, Barrel: barrel.Entity()})
}

// drainScheduler runs every task due at tick in the order they were queued.
// Tasks queued while draining wait for a later tick.
func drainScheduler(ecs *ecs.ECS, tick uint64) int {
	e, ok := components.Scheduler.First(ecs.World)
	if !ok {
		return 0
	}
	s := components.Scheduler.Get(e)

	var due, kept []components.ChainTask
	for _, t := range s.Tasks {
		if t.DueTick <= tick {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.Tasks = kept

	ran := 0
	for _, t := range due {
		if Explode(ecs, entryOf(ecs.World, t.Barrel)) {
			ran++
		}
	}
	return ran
}

// PendingChains reports how many chain detonations are waiting.
func PendingChains(ecs *ecs.ECS) int {
	if e, ok := components.Scheduler.First(ecs.World); ok {
		return len(components.Scheduler.Get(e).Tasks)
	}
	return 0
}
