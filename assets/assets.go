// Package assets embeds the battle scenes shipped with the simulator.
package assets

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

var (
	//go:embed all:scenes
	sceneFS embed.FS
)

// ScenesDir is the directory scene files live in within Scenes.
const ScenesDir = "scenes"

// Scenes returns the embedded scene file system.
func Scenes() fs.FS {
	return sceneFS
}

// SceneNames lists the embedded scene stems, sorted.
func SceneNames() []string {
	entries, err := fs.ReadDir(sceneFS, ScenesDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmx") {
			names = append(names, strings.TrimSuffix(e.Name(), ".tmx"))
		}
	}
	sort.Strings(names)
	return names
}

// ScenePath returns the path of a named scene inside Scenes.
func ScenePath(name string) string {
	return ScenesDir + "/" + name + ".tmx"
}
