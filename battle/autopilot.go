package battle

import "github.com/krool/slingsquad/systems"

// Autopilot launches the queued heroes one after another with a fixed aim,
// waiting for each to land first. Used by the headless simulator and bots.
type Autopilot struct {
	Aim systems.LaunchAim
}

// Step launches the next hero when nothing is in flight. It reports whether a
// hero was launched.
func (a Autopilot) Step(b *Battle) bool {
	if b.AllLaunched() || b.HeroesInFlight() > 0 {
		return false
	}
	_, ok := b.Launch(a.Aim)
	return ok
}
