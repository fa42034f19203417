package tags

import "github.com/yohamta/donburi"

var (
	Hero       = donburi.NewTag().SetName("Hero")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Block      = donburi.NewTag().SetName("Block")
	Barrel     = donburi.NewTag().SetName("Barrel")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for collision queries
const (
	ResolvHero       = "Hero"
	ResolvEnemy      = "Enemy"
	ResolvBlock      = "block"
	ResolvAllyBlock  = "allyblock"
	ResolvBarrel     = "barrel"
	ResolvProjectile = "projectile"
	ResolvQuery      = "query"
)
