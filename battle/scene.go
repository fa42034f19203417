package battle

import (
	"fmt"
	"log"

	"github.com/krool/slingsquad/components"
	cfg "github.com/krool/slingsquad/config"
	"github.com/krool/slingsquad/shared/leveldata"
	"github.com/krool/slingsquad/systems/factory"
)

// LoadScene populates the battle from a parsed scene. The whole scene is
// checked first so an invalid one leaves the battle untouched.
func (b *Battle) LoadScene(scene *leveldata.Scene) error {
	if scene == nil {
		return fmt.Errorf("nil scene")
	}
	if len(scene.Heroes) == 0 {
		return fmt.Errorf("scene %s has no heroes", scene.Name)
	}

	for _, h := range scene.Heroes {
		class := cfg.HeroClass(h.Class)
		if _, ok := cfg.Heroes.Types[class]; !ok || class == cfg.Minion {
			return fmt.Errorf("scene %s: unknown hero class %q", scene.Name, h.Class)
		}
	}
	for _, e := range scene.Enemies {
		if _, ok := cfg.Enemies.Types[cfg.EnemyClass(e.Class)]; !ok {
			return fmt.Errorf("scene %s: unknown enemy class %q", scene.Name, e.Class)
		}
	}
	materials := make([]cfg.Material, len(scene.Blocks))
	for i, bl := range scene.Blocks {
		mat, ok := cfg.ParseMaterial(bl.Material)
		if !ok {
			return fmt.Errorf("scene %s: unknown block material %q", scene.Name, bl.Material)
		}
		materials[i] = mat
	}

	if scene.GroundY > 0 {
		if e, ok := components.Battle.First(b.ecs.World); ok {
			components.Battle.Get(e).GroundY = scene.GroundY
		}
	}

	for _, h := range scene.Heroes {
		factory.CreateHero(b.ecs, cfg.HeroClass(h.Class), h.X, h.Y, h.Queue)
	}
	for _, e := range scene.Enemies {
		factory.CreateEnemy(b.ecs, cfg.EnemyClass(e.Class), e.X, e.Y)
	}
	for i, bl := range scene.Blocks {
		factory.CreateBlock(b.ecs, materials[i], bl.X, bl.Y, bl.W, bl.H)
	}
	for _, br := range scene.Barrels {
		radius, damage := br.Radius, br.Damage
		if radius <= 0 {
			radius = cfg.Explosion.DefaultRadius
		}
		if damage <= 0 {
			damage = cfg.Explosion.DefaultDamage
		}
		factory.CreateBarrel(b.ecs, br.X, br.Y, br.W, br.H, radius, damage)
	}

	log.Printf("[battle %s] loaded scene %s: %d heroes, %d enemies, %d blocks, %d barrels",
		b.id, scene.Name, len(scene.Heroes), len(scene.Enemies), len(scene.Blocks), len(scene.Barrels))
	return nil
}
