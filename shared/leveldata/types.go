// Package leveldata parses battle scenes authored in Tiled. It has no
// dependencies on donburi or resolv.
package leveldata

// Scene holds everything needed to populate a battle.
type Scene struct {
	Name    string
	Width   int
	Height  int
	GroundY float64 // top of the ground plane, 0 when the map has none

	Heroes  []HeroSpawn
	Enemies []EnemySpawn
	Blocks  []BlockSpawn
	Barrels []BarrelSpawn
}

// HeroSpawn is a queued hero at the slingshot.
type HeroSpawn struct {
	X, Y  float64
	Class string
	Queue int
}

// EnemySpawn places one enemy.
type EnemySpawn struct {
	X, Y  float64
	Class string
}

// BlockSpawn places one destructible block.
type BlockSpawn struct {
	X, Y, W, H float64
	Material   string
}

// BarrelSpawn places one explosive barrel. Zero Radius/Damage fall back to
// the defaults passed to the factory.
type BarrelSpawn struct {
	X, Y, W, H float64
	Radius     float64
	Damage     float64
}
