package systems

import (
	"github.com/automoto/charcontroller/assets"
	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const groundTopThickness = 3

var characterDrawOp = &ebiten.DrawImageOptions{}

// cameraOffset returns the translation from world to screen space.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawLevel fills the sky and draws the static ground.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		drawBlock(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H)
	})
}

// DrawPlatforms draws the moving platforms.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		x, y := float32(obj.X+camX), float32(obj.Y+camY)
		vector.FillRect(screen, x, y, float32(obj.W), float32(obj.H), cfg.DarkBlue, false)
		vector.FillRect(screen, x, y, float32(obj.W), groundTopThickness, cfg.LightBlue, false)
	})
}

func drawBlock(screen *ebiten.Image, x, y, w, h float64) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.GroundFill, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w), groundTopThickness, cfg.GroundTop, false)
}

// DrawCharacters draws each character's current clip frame anchored at the
// feet, mirrored by the transform and deformed by squash/stretch.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	frames := assets.CharacterFrames()

	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		animator := components.Animator.Get(e)
		if animator.CurrentAnimation == nil {
			return
		}
		clip := frames[animator.CurrentClip]
		frame := animator.CurrentAnimation.Frame()
		if frame < 0 || frame >= len(clip) {
			return
		}

		obj := components.Object.Get(e)
		feetX, feetY := FeetPosition(obj.Object, 0)

		scaleX, scaleY := 1.0, 1.0
		if e.HasComponent(components.Transform) {
			t := components.Transform.Get(e)
			scaleX, scaleY = t.ScaleX, t.ScaleY
		}
		if e.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(e)
			scaleX *= ss.ScaleX
			scaleY *= ss.ScaleY
		}

		op := characterDrawOp
		op.GeoM.Reset()
		op.GeoM.Translate(-float64(animator.FrameWidth)/2, -float64(animator.FrameHeight))
		op.GeoM.Scale(scaleX, scaleY)
		op.GeoM.Translate(feetX+camX, feetY+camY)
		screen.DrawImage(clip[frame], op)
	})
}
