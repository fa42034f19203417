package config

// CombatConfig contains tick engine configuration values
type CombatConfig struct {
	// Timing
	TickInterval     float64 // seconds per logical combat tick
	MaxTicksPerFrame int     // cap on ticks resolved in one frame

	// Hero vs block fallback attack
	BlockMultiplier float64 // damage multiplier when a hero attacks a block
	MaxBlockRange   float64 // cap on the class range used for block attacks

	// Support aura
	AuraRadius float64 // distance within which a Bard speeds up allies

	// Modifiers
	LowHealthThreshold float64 // health ratio below which the low-health bonus applies
	CritMultiplier     float64 // base crit multiplier before modifiers

	// Removal
	DespawnFrames int // frames a destroyed/dead entity stays before removal
}

// LaunchConfig contains launch controller values
type LaunchConfig struct {
	Cooldown float64 // seconds between launches
	MinSpeed float64 // launch speed at zero power
	MaxSpeed float64 // launch speed at full power
}

// ImpactConfig contains first-collision damage values
type ImpactConfig struct {
	ForceScale  float64 // damage per unit of impact force
	DamageFloor float64 // damage added to every qualifying impact
	DamageCap   float64 // max base damage before the class multiplier
}

// ExplosionConfig contains barrel and bomber explosion values
type ExplosionConfig struct {
	ImpulseForce    float64 // impulse at the epicentre, quadratic falloff
	ChainDelayTicks uint64  // ticks between a blast and the chained barrel

	// Barrels placed without their own values
	DefaultRadius float64
	DefaultDamage float64
}

// CrushConfig contains falling-block damage values
type CrushConfig struct {
	MinSpeed      float64 // block speed required to crush anything
	Radius        float64
	Damage        float64
	CooldownTicks uint64 // ticks before the same block can crush again
}

// WalkConfig contains hero walk-AI values
type WalkConfig struct {
	LookAhead       float64 // probe distance for a block ahead
	StuckEpsilon    float64 // horizontal progress considered negligible
	StuckTimeout    float64 // seconds without progress before reversing
	ReverseDuration float64 // seconds to keep walking the reversed way
}

// WorldConfig contains the collision space dimensions and the values used by
// the stand-in body integrator of headless simulations.
type WorldConfig struct {
	Width      int
	Height     int
	CellWidth  int
	CellHeight int

	Gravity          float64 // px/s^2
	GroundY          float64 // top of the ground plane
	ImpactForceScale float64 // impact force per unit of speed and mass
	Damping          float64 // fraction of velocity kept per second on the ground
}

// MaterialConfig contains block material values
type MaterialConfig struct {
	Name             string
	Health           float64
	DamageMultiplier float64
}

// Global configuration instances
var Combat CombatConfig
var Launch LaunchConfig
var Impact ImpactConfig
var Explosion ExplosionConfig
var Crush CrushConfig
var Walk WalkConfig
var World WorldConfig
var Materials map[Material]MaterialConfig

func init() {
	Combat = CombatConfig{
		TickInterval:     0.1, // 10 ticks per second
		MaxTicksPerFrame: 5,

		BlockMultiplier: 0.5,
		MaxBlockRange:   60,

		AuraRadius: 120,

		LowHealthThreshold: 0.3,
		CritMultiplier:     2.0,

		DespawnFrames: 1,
	}

	Launch = LaunchConfig{
		Cooldown: 1.0,
		MinSpeed: 300,
		MaxSpeed: 900,
	}

	Impact = ImpactConfig{
		ForceScale:  0.5,
		DamageFloor: 10,
		DamageCap:   120,
	}

	Explosion = ExplosionConfig{
		ImpulseForce:    600,
		ChainDelayTicks: 2, // ~200ms

		DefaultRadius: 80,
		DefaultDamage: 40,
	}

	Crush = CrushConfig{
		MinSpeed:      150,
		Radius:        24,
		Damage:        15,
		CooldownTicks: 5,
	}

	Walk = WalkConfig{
		LookAhead:       12,
		StuckEpsilon:    2,
		StuckTimeout:    1.5,
		ReverseDuration: 1.0,
	}

	World = WorldConfig{
		Width:      4096,
		Height:     2048,
		CellWidth:  32,
		CellHeight: 32,

		Gravity:          900,
		GroundY:          640,
		ImpactForceScale: 0.05,
		Damping:          0.05,
	}

	Materials = map[Material]MaterialConfig{
		Wood:  {Name: "wood", Health: 60, DamageMultiplier: 1.0},
		Stone: {Name: "stone", Health: 120, DamageMultiplier: 0.7},
		Ice:   {Name: "ice", Health: 40, DamageMultiplier: 1.4},
		Metal: {Name: "metal", Health: 200, DamageMultiplier: 0.5},
	}
}
