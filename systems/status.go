package systems

import (
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func updateStatuses(ecs *ecs.ECS, tick uint64) {
	for _, e := range snapshot(ecs.World, statusQuery) {
		if !isAlive(e) {
			continue
		}
		st := components.Status.Get(e)
		if st.Charm.Expired(tick) {
			st.Charm = components.TimedStatus{}
		}
		if st.Slow.Expired(tick) {
			st.Slow = components.SlowStatus{}
		}
		pulsePoison(ecs, e, st, tick)
	}

	for _, block := range snapshot(ecs.World, blockQuery) {
		b := components.Block.Get(block)
		if b.Ally && !b.Destroyed && tick >= b.ExpiresAtTick {
			destroyBlock(ecs, block)
		}
	}
}

func pulsePoison(ecs *ecs.ECS, e *donburi.Entry, st *components.StatusData, tick uint64) {
	p := &st.Poison
	if !p.Active || tick < p.NextPulseTick {
		return
	}
	p.PulsesLeft--
	p.NextPulseTick = tick + max(1, p.EveryTicks)
	amount := p.DamagePerPulse
	source := entryOf(ecs.World, p.Source)
	if p.PulsesLeft <= 0 {
		st.Poison = components.PoisonStatus{}
	}
	applyDamage(ecs, e, source, amount, false)
}

// ApplySlow lengthens the target's attack interval by factor for ticks.
func ApplySlow(ecs *ecs.ECS, target, source *donburi.Entry, slow cfg.SlowPayload) {
	if !isAlive(target) || slow.Ticks == 0 || slow.Factor <= 0 {
		return
	}
	st := components.Status.Get(target)
	st.Slow = components.SlowStatus{
		TimedStatus: components.TimedStatus{Active: true, ExpiresAtTick: currentTick(ecs) + slow.Ticks},
		Factor:      slow.Factor,
	}
	publishStatus(ecs, target, source, cfg.StatusSlow, slow.Factor, slow.Ticks)
}

// ApplyPoison replaces any running poison with a fresh one. The first pulse
// lands EveryTicks after application.
func ApplyPoison(ecs *ecs.ECS, target, source *donburi.Entry, poison cfg.PoisonPayload) {
	if !isAlive(target) || poison.Pulses <= 0 || poison.DamagePerPulse <= 0 {
		return
	}
	every := max(1, poison.EveryTicks)
	components.Status.Get(target).Poison = components.PoisonStatus{
		Active:         true,
		DamagePerPulse: poison.DamagePerPulse,
		PulsesLeft:     poison.Pulses,
		EveryTicks:     every,
		NextPulseTick:  currentTick(ecs) + every,
		Source:         entityOf(source),
	}
	publishStatus(ecs, target, source, cfg.StatusPoison, poison.DamagePerPulse, every*uint64(poison.Pulses))
}

func publishStatus(ecs *ecs.ECS, target, source *donburi.Entry, kind cfg.StatusKind, amount float64, ticks uint64) {
	x, y := centerOf(target)
	events.StatusAppliedEvent.Publish(ecs.World, events.StatusApplied{
		Target: target.Entity(),
		Source: entityOf(source),
		Kind:   kind,
		X:      x,
		Y:      y,
		Amount: amount,
		Ticks:  ticks,
	})
}
