package systems

import (
	"image/color"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider and the ground probe circle.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok || !components.Settings.Get(settingsEntry).ShowDebug {
		return
	}

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		// Viewport in world coordinates
		viewX, viewY := -camX, -camY
		viewW := float64(screen.Bounds().Dx())
		viewH := float64(screen.Bounds().Dy())

		for _, obj := range space.Objects() {
			if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
				continue
			}
			if obj.HasTags(tags.ResolvProbe) {
				continue
			}

			var c color.Color = cfg.Cyan
			switch {
			case obj.HasTags(tags.ResolvPlatform):
				c = cfg.LightBlue
			case obj.HasTags(tags.ResolvSolid):
				c = cfg.Grey
			case obj.HasTags(tags.ResolvPlayer):
				c = cfg.Yellow
			}

			vector.StrokeRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	components.GroundProbe.Each(ecs.World, func(e *donburi.Entry) {
		probe := components.GroundProbe.Get(e)
		ctrl := components.Controller.Get(e)
		cx, cy := FeetPosition(components.Object.Get(e).Object, probe.OffsetY)

		c := cfg.Red
		if ctrl.Grounded {
			c = cfg.Green
		}
		vector.StrokeCircle(screen, float32(cx+camX), float32(cy+camY), float32(probe.Radius), 1, c, true)
	})
}
