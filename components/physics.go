package components

import "github.com/yohamta/donburi"

// PhysicsData mirrors the body velocity owned by the physics layer. The core
// writes impulses and steering velocities here; the physics layer (or the
// built-in integrator) integrates them.
type PhysicsData struct {
	VelX    float64
	VelY    float64
	Mass    float64
	Dynamic bool // affected by gravity and impulses
}

// ApplyImpulse adds an impulse scaled by the body's mass.
func (p *PhysicsData) ApplyImpulse(ix, iy float64) {
	mass := p.Mass
	if mass <= 0 {
		mass = 1
	}
	p.VelX += ix / mass
	p.VelY += iy / mass
	p.Dynamic = true
}

var Physics = donburi.NewComponentType[PhysicsData]()
