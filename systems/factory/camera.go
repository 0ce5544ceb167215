package factory

import (
	"github.com/automoto/charcontroller/archetypes"
	"github.com/automoto/charcontroller/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := &components.CameraData{}
	data.Position.X = x
	data.Position.Y = y
	components.Camera.Set(camera, data)
	return camera
}
