package network

import (
	"sort"

	"github.com/krool/slingsquad/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// trackedBody interpolates one body between the last two snapshots.
type trackedBody struct {
	prev, target netcomponents.NetBodyData
	t            float64
}

// View is the spectator's picture of a battle, rebuilt from snapshots.
type View struct {
	bodies map[esync.NetworkId]*trackedBody
	Battle netcomponents.NetBattleData

	present map[esync.NetworkId]bool
}

func NewView() *View {
	return &View{
		bodies:  make(map[esync.NetworkId]*trackedBody),
		present: make(map[esync.NetworkId]bool),
	}
}

// Apply decodes a snapshot. Entities missing from it are dropped.
func (v *View) Apply(snapshot esync.WorldSnapshot) {
	clear(v.present)
	for _, ent := range snapshot {
		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}
		v.applyEntity(ent.Id, compData)
	}
	v.prune()
}

func (v *View) applyEntity(id esync.NetworkId, compData []any) {
	v.present[id] = true
	for _, data := range compData {
		switch d := data.(type) {
		case netcomponents.NetBodyData:
			tb, ok := v.bodies[id]
			if !ok {
				// First snapshot: no interpolation
				v.bodies[id] = &trackedBody{prev: d, target: d, t: 1}
				continue
			}
			tb.prev = *netcomponents.LerpNetBody(tb.prev, tb.target, tb.t)
			tb.target = d
			tb.t = 0
		case netcomponents.NetBattleData:
			v.Battle = d
		}
	}
}

func (v *View) prune() {
	for id := range v.bodies {
		if !v.present[id] {
			delete(v.bodies, id)
		}
	}
}

// Advance moves every body towards its latest snapshot by fraction dt.
func (v *View) Advance(dt float64) {
	for _, tb := range v.bodies {
		tb.t = min(tb.t+dt, 1)
	}
}

// Bodies returns the interpolated bodies ordered by network id.
func (v *View) Bodies() []netcomponents.NetBodyData {
	ids := make([]esync.NetworkId, 0, len(v.bodies))
	for id := range v.bodies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]netcomponents.NetBodyData, 0, len(ids))
	for _, id := range ids {
		tb := v.bodies[id]
		out = append(out, *netcomponents.LerpNetBody(tb.prev, tb.target, tb.t))
	}
	return out
}

// Count returns the bodies of one kind still standing.
func (v *View) Count(kind int) int {
	n := 0
	for _, tb := range v.bodies {
		if tb.target.Kind == kind && tb.target.State != "dead" {
			n++
		}
	}
	return n
}
