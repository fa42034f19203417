package systems

import (
	"github.com/krool/slingsquad/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every body in the space cells after the physics
// layer moved it.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil || obj.Space == nil {
			continue
		}
		obj.Update()
	}
}
