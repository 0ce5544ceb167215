package systems

import (
	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGroundDetection recomputes Grounded for every character from the feet
// probe. It runs once per physics step, before the controllers.
func UpdateGroundDetection(ecs *ecs.ECS) {
	components.GroundProbe.Each(ecs.World, DetectGround)
}

// DetectGround runs the probe query for a single character.
func DetectGround(e *donburi.Entry) {
	ctrl := components.Controller.Get(e)
	animator := components.Animator.Get(e)
	probe := components.GroundProbe.Get(e)
	body := components.Object.Get(e).Object

	cx, cy := FeetPosition(body, probe.OffsetY)
	wasGrounded := ctrl.Grounded

	ctrl.Grounded = false
	if len(OverlapCircle(probe.Probe, cx, cy, probe.Radius, probe.Layer, body)) > 0 {
		ctrl.Grounded = true
	}

	if !ctrl.Grounded {
		ctrl.InAir = true
		SetPlayerState(e, cfg.Fall)
	}

	animator.SetBool(cfg.FlagGrounded, ctrl.Grounded)

	if ctrl.Grounded && ctrl.InAir {
		ctrl.InAir = false
	}

	if wasGrounded != ctrl.Grounded && e.World != nil {
		components.GroundContact.Publish(e.World, components.GroundContactEvent{
			Entry:    e,
			Grounded: ctrl.Grounded,
		})
	}
}

// FeetPosition is the bottom centre of a body plus a vertical offset.
func FeetPosition(body *resolv.Object, offsetY float64) (float64, float64) {
	return body.X + body.W/2, body.Y + body.H + offsetY
}

// OverlapCircle returns every collider tagged layer that overlaps the circle
// at (cx, cy). The probe object is moved onto the circle's bounds and used for
// the broad phase; colliders belonging to self are skipped.
func OverlapCircle(probe *resolv.Object, cx, cy, radius float64, layer string, self *resolv.Object) []*resolv.Object {
	if probe == nil || radius <= 0 {
		return nil
	}

	probe.X = cx - radius
	probe.Y = cy - radius
	// resolv maps the far edge to cell (X+W-1), so pad by a pixel to reach
	// cells the circle touches; the narrow phase below decides.
	probe.W = radius*2 + 1
	probe.H = radius*2 + 1
	probe.Update()

	check := probe.Check(0, 0, layer)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, o := range check.Objects {
		if o == self || o == probe {
			continue
		}
		if self != nil && self.Data != nil && o.Data == self.Data {
			continue
		}
		if !gamemath.CircleOverlapsRect(cx, cy, radius, o.X, o.Y, o.W, o.H) {
			continue
		}
		hits = append(hits, o)
	}
	return hits
}
