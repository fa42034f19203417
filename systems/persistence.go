package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const modifiersKey = "modifiers"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the meta-progression store
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadModifierSet reads the ModifierSet earned by meta-progression. A missing
// or unreadable entry yields the zero set.
func LoadModifierSet() (cfg.ModifierSet, error) {
	if !gdataInitialized || gdataManager == nil {
		return cfg.ModifierSet{}, nil
	}

	data, err := gdataManager.LoadItem(modifiersKey)
	if err != nil {
		log.Printf("Warning: Could not load modifiers: %v", err)
		return cfg.ModifierSet{}, nil
	}
	if len(data) == 0 {
		// Nothing unlocked yet
		return cfg.ModifierSet{}, nil
	}

	var mods cfg.ModifierSet
	if err := json.Unmarshal(data, &mods); err != nil {
		log.Printf("Warning: Could not parse saved modifiers: %v", err)
		return cfg.ModifierSet{}, err
	}
	if err := mods.Validate(); err != nil {
		log.Printf("Warning: Saved modifiers rejected: %v", err)
		return cfg.ModifierSet{}, err
	}
	return mods, nil
}

// SaveModifierSet stores the ModifierSet for the next battles
func SaveModifierSet(mods cfg.ModifierSet) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	if err := mods.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(mods)
	if err != nil {
		log.Printf("Warning: Could not serialize modifiers: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(modifiersKey, data); err != nil {
		log.Printf("Warning: Could not save modifiers: %v", err)
		return err
	}
	return nil
}

// CombatantReport is one line of the post-battle accounting.
type CombatantReport struct {
	Faction     string  `json:"faction"`
	Class       string  `json:"class"`
	State       string  `json:"state"`
	Health      float64 `json:"health"`
	DamageDealt float64 `json:"damageDealt"`
	DamageTaken float64 `json:"damageTaken"`
	Healing     float64 `json:"healing"`
	Kills       int     `json:"kills"`
}

// BattleReport summarises a battle for stat tracking.
type BattleReport struct {
	ID              string            `json:"id"`
	Ticks           uint64            `json:"ticks"`
	Elapsed         float64           `json:"elapsed"`
	Heroes          []CombatantReport `json:"heroes"`
	Enemies         []CombatantReport `json:"enemies"`
	EnemiesKilled   int               `json:"enemiesKilled"`
	HeroesLost      int               `json:"heroesLost"`
	BlocksDestroyed int               `json:"blocksDestroyed"`
	BarrelsExploded int               `json:"barrelsExploded"`
}

// BuildBattleReport collects the accounting of every combatant still in the
// world. Enemies already removed only show up in the tallies.
func BuildBattleReport(ecs *ecs.ECS) *BattleReport {
	report := &BattleReport{}
	if b := battleData(ecs); b != nil {
		report.ID = b.ID.String()
	}
	c := clock(ecs)
	report.Ticks = c.Tick
	report.Elapsed = c.Elapsed
	tally(ecs, func(t *components.TallyData) {
		report.EnemiesKilled = t.EnemiesKilled
		report.HeroesLost = t.HeroesLost
		report.BlocksDestroyed = t.BlocksDestroyed
		report.BarrelsExploded = t.BarrelsExploded
	})

	heroQuery.Each(ecs.World, func(e *donburi.Entry) {
		report.Heroes = append(report.Heroes, combatantReport(e, "hero"))
	})
	enemyQuery.Each(ecs.World, func(e *donburi.Entry) {
		report.Enemies = append(report.Enemies, combatantReport(e, "enemy"))
	})
	return report
}

func combatantReport(e *donburi.Entry, faction string) CombatantReport {
	stats := components.Stats.Get(e)
	return CombatantReport{
		Faction:     faction,
		Class:       className(e),
		State:       stateOf(e).String(),
		Health:      components.Health.Get(e).Current,
		DamageDealt: stats.DamageDealt,
		DamageTaken: stats.DamageTaken,
		Healing:     stats.Healing,
		Kills:       stats.Kills,
	}
}

// SaveBattleReport stores a report under its battle id
func SaveBattleReport(report *BattleReport) error {
	if !gdataInitialized || gdataManager == nil || report == nil {
		return nil
	}

	data, err := json.Marshal(report)
	if err != nil {
		log.Printf("Warning: Could not serialize battle report: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(reportKey(report.ID), data); err != nil {
		log.Printf("Warning: Could not save battle report: %v", err)
		return err
	}
	return nil
}

// LoadBattleReport reads a stored report, nil if there is none.
func LoadBattleReport(id string) (*BattleReport, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(reportKey(id))
	if err != nil {
		return nil, fmt.Errorf("load battle report %s: %w", id, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var report BattleReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse battle report %s: %w", id, err)
	}
	return &report, nil
}

func reportKey(id string) string {
	return "battle-" + id
}
