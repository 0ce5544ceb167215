package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/charcontroller/archetypes"
	"github.com/automoto/charcontroller/assets"
	"github.com/automoto/charcontroller/components"
	"github.com/automoto/charcontroller/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named level, or the first one when name is empty.
func CreateLevel(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	levels, names, err := assets.LoadLevels()
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return nil, errors.New("no levels embedded")
	}
	if name == "" {
		name = names[0]
	}
	current, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (available: %v)", name, names)
	}

	return CreateLevelData(ecs, current, names), nil
}

// CreateLevelData wraps already loaded level data in a level entity.
func CreateLevelData(ecs *ecs.ECS, current *leveldata.LevelData, names []string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		CurrentLevel: current,
		LevelNames:   names,
	})
	return level
}

// NextLevelName returns the level after current, wrapping around.
func NextLevelName(names []string, current string) string {
	if len(names) == 0 {
		return ""
	}
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
