package components

import "github.com/yohamta/donburi"

// DespawnData removes an entity from the world once Frames reaches zero.
type DespawnData struct {
	Frames int
}

var Despawn = donburi.NewComponentType[DespawnData]()
