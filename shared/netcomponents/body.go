package netcomponents

import "github.com/yohamta/donburi"

// Body kinds, mirroring config.TargetKind plus projectiles
const (
	KindHero = iota
	KindEnemy
	KindBlock
	KindBarrel
	KindProjectile
)

// NetBodyData is what a spectator needs to draw one battle entity.
type NetBodyData struct {
	X, Y       float64
	W, H       float64
	VelX, VelY float64 // Client extrapolation between snapshots
	Kind       int
	Class      string // hero/enemy class or block material
	State      string
	Health     float64
	MaxHealth  float64
}

var NetBody = donburi.NewComponentType[NetBodyData]()

// LerpNetBody interpolates position; everything else snaps to the newer state.
func LerpNetBody(from, to NetBodyData, t float64) *NetBodyData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	return &out
}
