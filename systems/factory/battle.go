package factory

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/krool/slingsquad/archetypes"
	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBattle spawns the singleton carrying the battle context: id,
// modifiers, random source, clock, launcher and scheduler.
func CreateBattle(ecs *ecs.ECS, id uuid.UUID, mods cfg.ModifierSet, seed int64) *donburi.Entry {
	battle := archetypes.Battle.Spawn(ecs)
	components.Battle.SetValue(battle, components.BattleData{
		ID:        id,
		Modifiers: mods,
		Rand:      rand.New(rand.NewSource(seed)),
		GroundY:   cfg.World.GroundY,
	})
	components.Clock.SetValue(battle, components.ClockData{})
	components.Launcher.SetValue(battle, components.LauncherData{})
	components.Scheduler.SetValue(battle, components.SchedulerData{})
	components.Tally.SetValue(battle, components.TallyData{})
	return battle
}
