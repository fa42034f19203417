package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in scene files
const (
	GroupHeroes  = "Heroes"
	GroupEnemies = "Enemies"
	GroupBlocks  = "Blocks"
	GroupBarrels = "Barrels"
	GroupGround  = "Ground"
)

// LoadScene parses a TMX file into a Scene. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadScene(fsys fs.FS, tmxPath string) (*Scene, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scene := &Scene{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupHeroes:
			for _, o := range og.Objects {
				scene.Heroes = append(scene.Heroes, HeroSpawn{
					X:     o.X,
					Y:     o.Y,
					Class: o.Properties.GetString("class"),
					Queue: o.Properties.GetInt("queue"),
				})
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				scene.Enemies = append(scene.Enemies, EnemySpawn{
					X:     o.X,
					Y:     o.Y,
					Class: o.Properties.GetString("class"),
				})
			}
		case GroupBlocks:
			for _, o := range og.Objects {
				scene.Blocks = append(scene.Blocks, BlockSpawn{
					X:        o.X,
					Y:        o.Y,
					W:        o.Width,
					H:        o.Height,
					Material: o.Properties.GetString("material"),
				})
			}
		case GroupBarrels:
			for _, o := range og.Objects {
				scene.Barrels = append(scene.Barrels, BarrelSpawn{
					X:      o.X,
					Y:      o.Y,
					W:      o.Width,
					H:      o.Height,
					Radius: float64(o.Properties.GetInt("radius")),
					Damage: float64(o.Properties.GetInt("damage")),
				})
			}
		case GroupGround:
			for _, o := range og.Objects {
				if scene.GroundY == 0 || o.Y < scene.GroundY {
					scene.GroundY = o.Y
				}
			}
		}
	}

	if err := scene.validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", tmxPath, err)
	}

	// Launch order follows the queue property, then left-to-right
	sort.SliceStable(scene.Heroes, func(i, j int) bool {
		if scene.Heroes[i].Queue != scene.Heroes[j].Queue {
			return scene.Heroes[i].Queue < scene.Heroes[j].Queue
		}
		return scene.Heroes[i].X < scene.Heroes[j].X
	})

	return scene, nil
}

func (s *Scene) validate() error {
	if len(s.Heroes) == 0 {
		return fmt.Errorf("no heroes in %q group", GroupHeroes)
	}
	for i, h := range s.Heroes {
		if h.Class == "" {
			return fmt.Errorf("hero %d has no class", i)
		}
	}
	for i, e := range s.Enemies {
		if e.Class == "" {
			return fmt.Errorf("enemy %d has no class", i)
		}
	}
	for i, b := range s.Blocks {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("block %d has no size", i)
		}
	}
	return nil
}

// LoadAllScenes discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllScenes(fsys fs.FS, dir string) (map[string]*Scene, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	scenes := make(map[string]*Scene, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		scene, err := LoadScene(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		scenes[scene.Name] = scene
		names = append(names, scene.Name)
	}

	sort.Strings(names)
	return scenes, names, nil
}
