package factory

import (
	"github.com/krool/slingsquad/archetypes"
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProjectileSpec describes a projectile about to be fired from a centre point.
type ProjectileSpec struct {
	Faction    cfg.Faction
	Owner      donburi.Entity
	X, Y       float64 // centre
	VelX, VelY float64
	Damage     float64
	Radius     float64
	Lifetime   float64
	Poison     *cfg.PoisonPayload
	Slow       *cfg.SlowPayload
}

func CreateProjectile(ecs *ecs.ECS, spec ProjectileSpec) *donburi.Entry {
	radius := spec.Radius
	if radius <= 0 {
		radius = 4
	}

	projectile := archetypes.Projectile.Spawn(ecs)
	addObject(ecs, projectile, spec.X-radius, spec.Y-radius, radius*2, radius*2, tags.ResolvProjectile)

	components.Projectile.SetValue(projectile, components.ProjectileData{
		Faction:  spec.Faction,
		Owner:    spec.Owner,
		Damage:   spec.Damage,
		Radius:   radius,
		Lifetime: spec.Lifetime,
		Poison:   spec.Poison,
		Slow:     spec.Slow,
	})
	components.Physics.SetValue(projectile, components.PhysicsData{
		VelX: spec.VelX,
		VelY: spec.VelY,
		Mass: 1,
	})

	return projectile
}
