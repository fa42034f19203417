package components

import (
	"github.com/krool/slingsquad/config"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Faction  config.Faction
	Owner    donburi.Entity
	Damage   float64
	Radius   float64
	Lifetime float64 // seconds left
	Poison   *config.PoisonPayload
	Slow     *config.SlowPayload

	Destroyed bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
