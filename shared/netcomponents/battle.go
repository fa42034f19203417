package netcomponents

import "github.com/yohamta/donburi"

// NetBattleData is the battle-wide state, synced on a single entity.
type NetBattleData struct {
	Tick         uint64
	Elapsed      float64
	HeroesAlive  int
	EnemiesAlive int
	InFlight     int
	AllLaunched  bool
	Outcome      string // "ongoing", "victory" or "defeat"
}

var NetBattle = donburi.NewComponentType[NetBattleData]()
