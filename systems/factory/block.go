package factory

import (
	"github.com/krool/slingsquad/archetypes"
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Mass per square pixel of block
const blockDensity = 0.002

func CreateBlock(ecs *ecs.ECS, material cfg.Material, x, y, w, h float64) *donburi.Entry {
	mat, ok := cfg.Materials[material]
	if !ok {
		material = cfg.Wood
		mat = cfg.Materials[material]
	}

	block := archetypes.Block.Spawn(ecs)
	addObject(ecs, block, x, y, w, h, tags.ResolvBlock)

	components.Block.SetValue(block, components.BlockData{
		Material: material,
	})
	components.Health.SetValue(block, components.HealthData{
		Current: mat.Health,
		Max:     mat.Health,
	})
	components.Physics.SetValue(block, components.PhysicsData{
		Mass: w * h * blockDensity,
	})

	return block
}

// CreateAllyBlock spawns a temporary hero-built block that absorbs enemy
// projectiles until expiresAtTick.
func CreateAllyBlock(ecs *ecs.ECS, x, y, size, health float64, expiresAtTick uint64) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)
	addObject(ecs, block, x, y, size, size, tags.ResolvAllyBlock)

	components.Block.SetValue(block, components.BlockData{
		Material:      cfg.Wood,
		Ally:          true,
		ExpiresAtTick: expiresAtTick,
	})
	components.Health.SetValue(block, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.Physics.SetValue(block, components.PhysicsData{
		Mass: size * size * blockDensity,
	})

	return block
}

func CreateBarrel(ecs *ecs.ECS, x, y, w, h, radius, damage float64) *donburi.Entry {
	barrel := archetypes.Barrel.Spawn(ecs)
	addObject(ecs, barrel, x, y, w, h, tags.ResolvBarrel)

	components.Barrel.SetValue(barrel, components.BarrelData{
		Radius: radius,
		Damage: damage,
	})

	return barrel
}
