package systems

import (
	"github.com/krool/slingsquad/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDespawns removes entities whose despawn countdown ran out, so dead
// and destroyed entities leave the world one frame after it happened.
func UpdateDespawns(ecs *ecs.ECS) {
	for _, e := range snapshot(ecs.World, despawnQuery) {
		d := components.Despawn.Get(e)
		d.Frames--
		if d.Frames > 0 {
			continue
		}

		if e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		ecs.World.Remove(e.Entity())
	}
}
