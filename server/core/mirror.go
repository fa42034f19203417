package core

import (
	"log"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/shared/netcomponents"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var bodyQuery = donburi.NewQuery(filter.Contains(components.Object))

// mirror copies the visible state of a battle world into the network world.
// Battle entities are never synced directly; each gets a twin carrying only
// net components.
type mirror struct {
	net    donburi.World
	twins  map[donburi.Entity]donburi.Entity // battle entity -> net entity
	battle donburi.Entity                    // net entity holding NetBattle
	sync   bool                              // register twins with srvsync
}

func newMirror(net donburi.World, sync bool) *mirror {
	return &mirror{
		net:    net,
		twins:  make(map[donburi.Entity]donburi.Entity),
		battle: donburi.Null,
		sync:   sync,
	}
}

// update creates, refreshes and removes twins so the net world matches src.
func (m *mirror) update(src donburi.World, state netcomponents.NetBattleData) {
	seen := make(map[donburi.Entity]bool, len(m.twins))

	bodyQuery.Each(src, func(e *donburi.Entry) {
		body, ok := describe(e)
		if !ok {
			return
		}
		seen[e.Entity()] = true

		twin, exists := m.twins[e.Entity()]
		if !exists {
			twin = m.net.Create(netcomponents.NetBody)
			if m.sync {
				if err := srvsync.NetworkSync(m.net, &twin, srvsync.WithInterp(netcomponents.NetBody)); err != nil {
					log.Printf("Failed to sync body: %v", err)
				}
			}
			m.twins[e.Entity()] = twin
		}
		netcomponents.NetBody.SetValue(m.net.Entry(twin), body)
	})

	for id, twin := range m.twins {
		if seen[id] {
			continue
		}
		if m.net.Valid(twin) {
			m.net.Remove(twin)
		}
		delete(m.twins, id)
	}

	if m.battle == donburi.Null {
		m.battle = m.net.Create(netcomponents.NetBattle)
		if m.sync {
			if err := srvsync.NetworkSync(m.net, &m.battle, netcomponents.NetBattle); err != nil {
				log.Printf("Failed to sync battle state: %v", err)
			}
		}
	}
	netcomponents.NetBattle.SetValue(m.net.Entry(m.battle), state)
}

// describe builds the net view of a battle entity. Entities without a body
// in the space, destroyed blocks and exploded barrels are skipped.
func describe(e *donburi.Entry) (netcomponents.NetBodyData, bool) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return netcomponents.NetBodyData{}, false
	}
	body := netcomponents.NetBodyData{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	if e.HasComponent(components.Physics) {
		phys := components.Physics.Get(e)
		body.VelX, body.VelY = phys.VelX, phys.VelY
	}
	if e.HasComponent(components.Health) {
		hp := components.Health.Get(e)
		body.Health, body.MaxHealth = hp.Current, hp.Max
	}
	if e.HasComponent(components.Combatant) {
		body.State = components.Combatant.Get(e).State.String()
	}

	switch {
	case e.HasComponent(components.Hero):
		body.Kind = netcomponents.KindHero
		body.Class = string(components.Hero.Get(e).Class)
	case e.HasComponent(components.Enemy):
		body.Kind = netcomponents.KindEnemy
		body.Class = string(components.Enemy.Get(e).Class)
	case e.HasComponent(components.Block):
		block := components.Block.Get(e)
		if block.Destroyed {
			return body, false
		}
		body.Kind = netcomponents.KindBlock
		body.Class = cfg.Materials[block.Material].Name
		if block.Ally {
			body.Class = "ally"
		}
	case e.HasComponent(components.Barrel):
		if components.Barrel.Get(e).Exploded {
			return body, false
		}
		body.Kind = netcomponents.KindBarrel
	case e.HasComponent(components.Projectile):
		if components.Projectile.Get(e).Destroyed {
			return body, false
		}
		body.Kind = netcomponents.KindProjectile
	default:
		return body, false
	}
	return body, true
}
