package systems

import (
	"log"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tuningUpdates <-chan *cfg.Tuning

// SetTuningSource connects UpdateTuning to a stream of reloaded tuning files.
func SetTuningSource(updates <-chan *cfg.Tuning) {
	tuningUpdates = updates
}

// UpdateTuning applies the latest reloaded tuning, if one arrived since the
// previous tick. It never blocks.
func UpdateTuning(ecs *ecs.ECS) {
	if tuningUpdates == nil {
		return
	}
	select {
	case t := <-tuningUpdates:
		ApplyTuning(ecs, t)
		log.Printf("Tuning reloaded")
	default:
	}
}

// ApplyTuning writes t into the global config and refreshes the values that
// were copied onto existing entities at spawn.
func ApplyTuning(ecs *ecs.ECS, t *cfg.Tuning) {
	if t == nil {
		return
	}
	t.Apply()

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		body.Mass = cfg.Controller.Mass
		body.Gravity = cfg.Physics.Gravity
		body.Friction = cfg.Physics.Friction
		body.MaxFallSpeed = cfg.Physics.MaxFallSpeed
	})
	components.GroundProbe.Each(ecs.World, func(e *donburi.Entry) {
		probe := components.GroundProbe.Get(e)
		probe.Radius = cfg.Controller.GroundCheckRadius
		probe.OffsetY = cfg.Controller.GroundCheckOffsetY
		probe.Layer = cfg.Controller.GroundLayer
	})
}
