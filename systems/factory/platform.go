package factory

import (
	"github.com/automoto/charcontroller/archetypes"
	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/shared/leveldata"
	"github.com/automoto/charcontroller/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a moving platform that travels Distance pixels away
// from its spawn and back, forever.
func CreatePlatform(ecs *ecs.ECS, spawn leveldata.PlatformSpawn) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H,
		tags.ResolvSolid, tags.ResolvPlatform, cfg.Controller.GroundLayer)
	obj.SetShape(resolv.NewRectangle(0, 0, spawn.W, spawn.H))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	distance := spawn.Distance
	if distance == 0 {
		distance = cfg.Platform.DefaultDistance
	}
	duration := spawn.Duration
	if duration <= 0 {
		duration = cfg.Platform.DefaultDuration
	}

	// Vertical platforms rise first, horizontal ones move right first.
	if spawn.Axis == "y" {
		distance = -distance
	}

	components.Platform.SetValue(platform, components.PlatformData{
		Tween:    components.NewPlatformTween(distance, duration),
		Axis:     spawn.Axis,
		Distance: distance,
		Duration: duration,
		OriginX:  spawn.X,
		OriginY:  spawn.Y,
	})

	return platform
}
