package components

import (
	"github.com/krool/slingsquad/config"
	"github.com/yohamta/donburi"
)

type HeroData struct {
	Class  config.HeroClass
	Config *config.HeroTypeConfig // Cached reference to class configuration

	// Launch queue
	QueueIndex  int
	Launched    bool // left idle at least once
	FirstLaunch bool // first hero launched this battle
	Summoned    bool // spawned mid-battle, never queued

	PierceLeft    int
	IgnoreContact donburi.Entity // body pierced through, not an impact
	Revived       bool // resurrect already consumed

	// Walk AI
	WalkDir      float64 // -1 left, 1 right, 0 halted
	AnchorX      float64 // x at the last noticeable progress
	StuckTimer   float64 // seconds without progress
	ReverseTimer float64 // seconds left walking the reversed way
}

var Hero = donburi.NewComponentType[HeroData]()
