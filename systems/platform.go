package systems

import (
	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances every moving platform along its tween and records
// how far it moved so riders can be carried.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := cfg.FixedDelta()
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		StepPlatform(components.Platform.Get(e), components.Object.Get(e), dt)
	})
}

// StepPlatform moves a platform by one tick. The tween restarts after the
// return leg so the platform loops forever.
func StepPlatform(platform *components.PlatformData, obj *components.ObjectData, dt float64) {
	offset, _, finished := platform.Tween.Update(float32(dt))
	if finished {
		platform.Tween = components.NewPlatformTween(platform.Distance, platform.Duration)
		offset = 0
	}

	prevX, prevY := obj.X, obj.Y
	switch platform.Axis {
	case "x":
		obj.X = platform.OriginX + float64(offset)
	default:
		obj.Y = platform.OriginY + float64(offset)
	}

	platform.DeltaX = obj.X - prevX
	platform.DeltaY = obj.Y - prevY
	obj.Update()
}
