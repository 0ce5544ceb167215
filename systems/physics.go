package systems

import (
	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		StepBody(components.Body.Get(e))
	})
}

// StepBody integrates gravity and ground friction for one tick. Friction only
// applies to a supported body the controller did not drive this tick.
func StepBody(body *components.BodyData) {
	if body.Support != nil && !body.Driven {
		body.Velocity.X = gamemath.ApplyFriction(body.Velocity.X, body.Friction)
	}

	body.Velocity.Y += body.Gravity
	body.Velocity.Y = gamemath.Clamp(body.Velocity.Y, cfg.Physics.MaxRiseSpeed, body.MaxFallSpeed)

	body.Driven = false
}
