package components

import "github.com/yohamta/donburi"

// TimedStatus is an (active, expiresAtTick) pair checked once per tick.
type TimedStatus struct {
	Active        bool
	ExpiresAtTick uint64
}

// Expired reports whether an active status ran out at tick.
func (s TimedStatus) Expired(tick uint64) bool {
	return s.Active && tick >= s.ExpiresAtTick
}

type SlowStatus struct {
	TimedStatus
	Factor float64 // attack interval multiplier
}

// PoisonStatus deals a fixed amount every few ticks until out of pulses.
type PoisonStatus struct {
	Active         bool
	DamagePerPulse float64
	PulsesLeft     int
	EveryTicks     uint64
	NextPulseTick  uint64
	Source         donburi.Entity
}

type StatusData struct {
	Charm  TimedStatus
	Slow   SlowStatus
	Poison PoisonStatus
}

// CooldownFactor returns the attack interval multiplier from slow.
func (s *StatusData) CooldownFactor() float64 {
	if s.Slow.Active && s.Slow.Factor > 0 {
		return s.Slow.Factor
	}
	return 1
}

var Status = donburi.NewComponentType[StatusData]()
