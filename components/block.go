package components

import (
	"github.com/krool/slingsquad/config"
	"github.com/yohamta/donburi"
)

type BlockData struct {
	Material  config.Material
	Destroyed bool

	// Ally blocks are spawned by heroes and vanish at ExpiresAtTick
	Ally          bool
	ExpiresAtTick uint64

	LastCrushTick uint64
	HasCrushed    bool
}

// BarrelData describes an explosive hazard. Primed is set while a chain
// detonation is waiting in the scheduler.
type BarrelData struct {
	Exploded bool
	Primed   bool
	Radius   float64
	Damage   float64
}

var (
	Block  = donburi.NewComponentType[BlockData]()
	Barrel = donburi.NewComponentType[BarrelData]()
)
