package systems

import (
	"math"

	"github.com/automoto/charcontroller/components"
	"github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	ctrl := components.Controller.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when the character is moving, freeze offset when idle
	if math.Abs(body.Velocity.X) > config.Camera.LookAheadSpeedThreshold {
		direction := config.DirectionRight
		if !ctrl.FacingRight {
			direction = config.DirectionLeft
		}
		targetLookAhead := direction * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := playerObject.X + playerObject.W/2 + camera.LookAheadX
	targetY := playerObject.Y + playerObject.H/2

	targetX, targetY = ClampCameraTarget(targetX, targetY,
		float64(levelData.CurrentLevel.MapWidth), float64(levelData.CurrentLevel.MapHeight))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// ClampCameraTarget keeps the camera centre far enough from the level edges
// that the level always fills the screen. Levels smaller than the screen are
// centred.
func ClampCameraTarget(x, y, levelWidth, levelHeight float64) (float64, float64) {
	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2

	if levelWidth <= halfW*2 {
		x = levelWidth / 2
	} else {
		x = math.Max(halfW, math.Min(levelWidth-halfW, x))
	}
	if levelHeight <= halfH*2 {
		y = levelHeight / 2
	} else {
		y = math.Max(halfH, math.Min(levelHeight-halfH, y))
	}
	return x, y
}
