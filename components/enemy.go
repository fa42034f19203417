package components

import (
	"github.com/krool/slingsquad/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Class  config.EnemyClass
	Config *config.EnemyTypeConfig // Cached reference to type configuration
	Facing float64                 // -1 left, 1 right

	// Rush types lock onto one hero when they activate
	RushTarget donburi.Entity
}

var Enemy = donburi.NewComponentType[EnemyData]()
