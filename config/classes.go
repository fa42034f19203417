package config

// HeroClass names one of the launchable hero classes.
type HeroClass string

const (
	Warrior     HeroClass = "Warrior"
	Ranger      HeroClass = "Ranger"
	Mage        HeroClass = "Mage"
	Priest      HeroClass = "Priest"
	Bard        HeroClass = "Bard"
	Rogue       HeroClass = "Rogue"
	Engineer    HeroClass = "Engineer"
	Necromancer HeroClass = "Necromancer"

	// Minion is summoned by a Necromancer and never launched.
	Minion HeroClass = "Minion"
)

// HeroTypeConfig contains configuration for a hero class
type HeroTypeConfig struct {
	Name HeroClass

	// Combat
	Health           float64
	Damage           float64
	Range            float64
	AttackInterval   float64 // seconds
	ImpactRadius     float64
	DamageMultiplier float64 // applied to impact base damage

	// Movement
	WalkSpeed             float64
	Mass                  float64
	LaunchSpeedMultiplier float64

	// Dimensions
	Width  float64
	Height float64

	// Warrior
	KnockbackForce      float64
	FirstLaunchBonusPct float64 // impact bonus when this hero opened the battle

	// Ranger
	PierceCount      int
	VolleyCount      int
	VolleySpread     float64 // radians between arrows
	VolleySpeed      float64
	VolleyDamage     float64
	VolleyLifetime   float64 // seconds
	ProjectileRadius float64

	// Mage
	ChainTargets  int
	ChainRange    float64
	ChainFraction float64

	// Priest
	HealAmount float64
	HealRadius float64

	// Bard
	CharmTicks     uint64
	AuraSpeedBonus float64 // fraction removed from allies' attack interval

	// Rogue
	BackstabMultiplier float64

	// Engineer
	AllyBlockCount  int
	AllyBlockHealth float64
	AllyBlockTicks  uint64
	AllyBlockSize   float64

	// Necromancer
	MinionCount int
}

// EnemyClass names one of the enemy classes.
type EnemyClass string

const (
	Grunt       EnemyClass = "Grunt"
	Brute       EnemyClass = "Brute"
	Goblin      EnemyClass = "Goblin"
	Knight      EnemyClass = "Knight"
	Warlord     EnemyClass = "Warlord"
	Archer      EnemyClass = "Archer"
	Crossbowman EnemyClass = "Crossbowman"
	Poisoner    EnemyClass = "Poisoner"
	FrostCaster EnemyClass = "FrostCaster"
	Shaman      EnemyClass = "Shaman"
	Bomber      EnemyClass = "Bomber"
	Sapper      EnemyClass = "Sapper"
)

// Behavior selects an enemy's attack handler.
type Behavior int

const (
	BehaviorMelee Behavior = iota
	BehaviorRanged
	BehaviorSupport
	BehaviorRush
)

// PoisonPayload is applied by a projectile hit and pulses every few ticks.
type PoisonPayload struct {
	DamagePerPulse float64
	Pulses         int
	EveryTicks     uint64
}

// SlowPayload lengthens the target's attack interval for a while.
type SlowPayload struct {
	Factor float64 // cooldown multiplier (> 1 is slower)
	Ticks  uint64
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name     EnemyClass
	Behavior Behavior

	// Combat
	Health         float64
	Damage         float64
	Range          float64
	AttackInterval float64 // seconds
	AggroRange     float64

	// Dimensions
	Width  float64
	Height float64
	Mass   float64

	// Ranged
	ProjectileSpeed    float64
	ProjectileRadius   float64
	ProjectileLifetime float64 // seconds
	Poison             *PoisonPayload
	Slow               *SlowPayload

	// Support
	HealAmount float64
	HealRange  float64

	// Rush
	RushSpeed     float64
	DetonateRange float64
	BlastRadius   float64
	BlastDamage   float64
}

// HeroesConfig holds every hero class.
type HeroesConfig struct {
	Types map[HeroClass]HeroTypeConfig
}

// EnemiesConfig holds every enemy class.
type EnemiesConfig struct {
	Types map[EnemyClass]EnemyTypeConfig
}

var Heroes HeroesConfig
var Enemies EnemiesConfig

// LaunchOrder lists the launchable classes, used for squad validation.
var LaunchOrder = []HeroClass{Warrior, Ranger, Mage, Priest, Bard, Rogue, Engineer, Necromancer}

func init() {
	Heroes = HeroesConfig{Types: map[HeroClass]HeroTypeConfig{
		Warrior: {
			Name: Warrior, Health: 150, Damage: 14, Range: 40, AttackInterval: 1.0,
			ImpactRadius: 80, DamageMultiplier: 1.0,
			WalkSpeed: 60, Mass: 3, LaunchSpeedMultiplier: 0.9,
			Width: 20, Height: 28,
			KnockbackForce: 400, FirstLaunchBonusPct: 0.25,
		},
		Ranger: {
			Name: Ranger, Health: 90, Damage: 10, Range: 140, AttackInterval: 0.8,
			ImpactRadius: 60, DamageMultiplier: 0.9,
			WalkSpeed: 70, Mass: 2, LaunchSpeedMultiplier: 1.1,
			Width: 18, Height: 26,
			PierceCount: 1, VolleyCount: 3, VolleySpread: 0.2,
			VolleySpeed: 500, VolleyDamage: 12, VolleyLifetime: 1.5, ProjectileRadius: 4,
		},
		Mage: {
			Name: Mage, Health: 80, Damage: 12, Range: 110, AttackInterval: 1.2,
			ImpactRadius: 90, DamageMultiplier: 1.1,
			WalkSpeed: 50, Mass: 2, LaunchSpeedMultiplier: 1.0,
			Width: 18, Height: 26,
			ChainTargets: 3, ChainRange: 160, ChainFraction: 0.5,
		},
		Priest: {
			Name: Priest, Health: 100, Damage: 6, Range: 80, AttackInterval: 1.0,
			ImpactRadius: 70, DamageMultiplier: 0.7,
			WalkSpeed: 55, Mass: 2, LaunchSpeedMultiplier: 1.0,
			Width: 18, Height: 26,
			HealAmount: 40, HealRadius: 120,
		},
		Bard: {
			Name: Bard, Health: 95, Damage: 8, Range: 90, AttackInterval: 0.9,
			ImpactRadius: 70, DamageMultiplier: 0.8,
			WalkSpeed: 60, Mass: 2, LaunchSpeedMultiplier: 1.0,
			Width: 18, Height: 26,
			CharmTicks: 40, AuraSpeedBonus: 0.25,
		},
		Rogue: {
			Name: Rogue, Health: 85, Damage: 16, Range: 35, AttackInterval: 0.6,
			ImpactRadius: 50, DamageMultiplier: 1.0,
			WalkSpeed: 85, Mass: 1.5, LaunchSpeedMultiplier: 1.2,
			Width: 16, Height: 24,
			BackstabMultiplier: 2.0,
		},
		Engineer: {
			Name: Engineer, Health: 110, Damage: 9, Range: 60, AttackInterval: 1.1,
			ImpactRadius: 70, DamageMultiplier: 0.9,
			WalkSpeed: 50, Mass: 2.5, LaunchSpeedMultiplier: 0.95,
			Width: 20, Height: 26,
			AllyBlockCount: 2, AllyBlockHealth: 60, AllyBlockTicks: 80, AllyBlockSize: 24,
		},
		Necromancer: {
			Name: Necromancer, Health: 90, Damage: 9, Range: 100, AttackInterval: 1.1,
			ImpactRadius: 70, DamageMultiplier: 0.9,
			WalkSpeed: 50, Mass: 2, LaunchSpeedMultiplier: 1.0,
			Width: 18, Height: 26,
			MinionCount: 2,
		},
		Minion: {
			Name: Minion, Health: 40, Damage: 6, Range: 30, AttackInterval: 1.0,
			DamageMultiplier: 1.0,
			WalkSpeed: 70, Mass: 1,
			Width: 14, Height: 18,
		},
	}}

	Enemies = EnemiesConfig{Types: map[EnemyClass]EnemyTypeConfig{
		Grunt: {
			Name: Grunt, Behavior: BehaviorMelee,
			Health: 60, Damage: 8, Range: 30, AttackInterval: 1.0, AggroRange: 200,
			Width: 18, Height: 26, Mass: 2,
		},
		Brute: {
			Name: Brute, Behavior: BehaviorMelee,
			Health: 140, Damage: 16, Range: 36, AttackInterval: 1.6, AggroRange: 180,
			Width: 26, Height: 32, Mass: 5,
		},
		Goblin: {
			Name: Goblin, Behavior: BehaviorMelee,
			Health: 40, Damage: 6, Range: 28, AttackInterval: 0.6, AggroRange: 220,
			Width: 14, Height: 20, Mass: 1,
		},
		Knight: {
			Name: Knight, Behavior: BehaviorMelee,
			Health: 180, Damage: 12, Range: 34, AttackInterval: 1.2, AggroRange: 180,
			Width: 20, Height: 30, Mass: 4,
		},
		Warlord: {
			Name: Warlord, Behavior: BehaviorMelee,
			Health: 400, Damage: 25, Range: 45, AttackInterval: 2.0, AggroRange: 260,
			Width: 30, Height: 40, Mass: 8,
		},
		Archer: {
			Name: Archer, Behavior: BehaviorRanged,
			Health: 50, Damage: 9, Range: 220, AttackInterval: 1.4, AggroRange: 260,
			Width: 16, Height: 26, Mass: 2,
			ProjectileSpeed: 320, ProjectileRadius: 4, ProjectileLifetime: 2,
		},
		Crossbowman: {
			Name: Crossbowman, Behavior: BehaviorRanged,
			Health: 70, Damage: 15, Range: 260, AttackInterval: 2.0, AggroRange: 280,
			Width: 18, Height: 26, Mass: 2,
			ProjectileSpeed: 420, ProjectileRadius: 4, ProjectileLifetime: 2,
		},
		Poisoner: {
			Name: Poisoner, Behavior: BehaviorRanged,
			Health: 45, Damage: 4, Range: 200, AttackInterval: 1.8, AggroRange: 240,
			Width: 16, Height: 24, Mass: 1.5,
			ProjectileSpeed: 280, ProjectileRadius: 5, ProjectileLifetime: 2,
			Poison: &PoisonPayload{DamagePerPulse: 3, Pulses: 5, EveryTicks: 5},
		},
		FrostCaster: {
			Name: FrostCaster, Behavior: BehaviorRanged,
			Health: 55, Damage: 6, Range: 200, AttackInterval: 1.6, AggroRange: 240,
			Width: 16, Height: 26, Mass: 1.5,
			ProjectileSpeed: 260, ProjectileRadius: 6, ProjectileLifetime: 2,
			Slow: &SlowPayload{Factor: 1.5, Ticks: 30},
		},
		Shaman: {
			Name: Shaman, Behavior: BehaviorSupport,
			Health: 60, Damage: 5, Range: 30, AttackInterval: 1.5, AggroRange: 220,
			Width: 16, Height: 26, Mass: 1.5,
			HealAmount: 20, HealRange: 150,
		},
		Bomber: {
			Name: Bomber, Behavior: BehaviorRush,
			Health: 30, AggroRange: 250,
			Width: 16, Height: 20, Mass: 1,
			RushSpeed: 160, DetonateRange: 20, BlastRadius: 70, BlastDamage: 40,
		},
		Sapper: {
			Name: Sapper, Behavior: BehaviorRush,
			Health: 45, AggroRange: 220,
			Width: 18, Height: 22, Mass: 1.5,
			RushSpeed: 110, DetonateRange: 24, BlastRadius: 90, BlastDamage: 55,
		},
	}}
}
