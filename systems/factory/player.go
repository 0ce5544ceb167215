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

// CreatePlayer spawns a controllable character with its feet at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64, index int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Controller.CollisionWidth)
	h := float64(cfg.Controller.CollisionHeight)

	obj := resolv.NewObject(x-w/2, y-h, w, h, "character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	// The probe is a square around the overlap circle; the narrow phase
	// in systems.OverlapCircle trims it to the circle.
	r := cfg.Controller.GroundCheckRadius
	probe := resolv.NewObject(0, 0, r*2, r*2, tags.ResolvProbe)
	probe.Data = player
	addToSpace(ecs, probe)

	components.GroundProbe.SetValue(player, components.GroundProbeData{
		Probe:   probe,
		Radius:  r,
		OffsetY: cfg.Controller.GroundCheckOffsetY,
		Layer:   cfg.Controller.GroundLayer,
	})

	components.Player.SetValue(player, components.PlayerData{
		Index:  index,
		SpawnX: x,
		SpawnY: y,
	})
	components.Body.SetValue(player, components.BodyData{
		Mass:         cfg.Controller.Mass,
		Gravity:      cfg.Physics.Gravity,
		Friction:     cfg.Physics.Friction,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Controller.SetValue(player, components.ControllerData{
		State:       cfg.Idle,
		FacingRight: true,
	})
	components.Transform.SetValue(player, components.TransformData{
		ScaleX: 1,
		ScaleY: 1,
	})

	components.Animator.Set(player, GenerateAnimator())

	return player
}
