package factory

import (
	"github.com/automoto/charcontroller/archetypes"
	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates a static collider that blocks bodies and counts as
// ground for the feet probe.
func CreateGround(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid, cfg.Controller.GroundLayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ground // Link for O(1) lookup

	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return ground
}
