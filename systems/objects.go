package systems

import (
	"github.com/automoto/charcontroller/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every moved collider with its space cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
