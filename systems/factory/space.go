package factory

import (
	"github.com/automoto/charcontroller/archetypes"
	"github.com/automoto/charcontroller/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// addToSpace registers obj with the world's collision space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
