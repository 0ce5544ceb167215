package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in TMX files.
const (
	GroupGround      = "Ground"
	GroupPlatforms   = "Platforms"
	GroupPlayerSpawn = "PlayerSpawn"
)

// ErrNoSpawn is returned for levels without a PlayerSpawn object.
var ErrNoSpawn = errors.New("no player spawn points defined in map")

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (game) or fstest.MapFS (tests).
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Ground = append(data.Ground, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				axis := o.Properties.GetString("axis")
				if axis != "x" {
					axis = "y"
				}
				data.Platforms = append(data.Platforms, PlatformSpawn{
					Rect:     Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Axis:     axis,
					Distance: o.Properties.GetFloat("distance"),
					Duration: o.Properties.GetFloat("duration"),
				})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("level %s: %w", tmxPath, ErrNoSpawn)
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
