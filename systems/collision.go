package systems

import (
	"github.com/automoto/charcontroller/components"
	"github.com/automoto/charcontroller/shared/gamemath"
	"github.com/automoto/charcontroller/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionEpsilon absorbs float drift so a body resting on a surface is not
// treated as overlapping it sideways.
const collisionEpsilon = 0.01

// landTolerance lets a body land on a surface that has risen slightly into its feet.
const landTolerance = 4.0

func UpdateCollisions(ecs *ecs.ECS) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		obj := components.Object.Get(e).Object

		carryWithSupport(body, obj)
		resolveHorizontalCollision(body, obj)
		resolveVerticalCollision(body, obj)

		if e.HasComponent(components.Player) {
			respawnIfOutOfBounds(ecs, e)
		}
		obj.Update()
	})
}

// carryWithSupport moves a body by the movement its supporting platform made
// this tick.
func carryWithSupport(body *components.BodyData, obj *resolv.Object) {
	if body.Support == nil || !body.Support.HasTags(tags.ResolvPlatform) {
		return
	}
	platformEntry, ok := body.Support.Data.(*donburi.Entry)
	if !ok || !platformEntry.Valid() || !platformEntry.HasComponent(components.Platform) {
		return
	}

	platform := components.Platform.Get(platformEntry)
	moveHorizontal(obj, platform.DeltaX)
	obj.Y += platform.DeltaY
}

// resolveHorizontalCollision moves the body along X, stopping it against walls.
func resolveHorizontalCollision(body *components.BodyData, obj *resolv.Object) {
	dx := body.Velocity.X
	if dx == 0 {
		return
	}

	if moved := moveHorizontal(obj, dx); moved != dx {
		body.Velocity.X = 0
	}
}

// moveHorizontal moves obj by up to dx, stopping flush against the first solid
// in the way, and returns the distance actually moved.
func moveHorizontal(obj *resolv.Object, dx float64) float64 {
	if dx == 0 {
		return 0
	}

	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		obj.X += dx
		return dx
	}

	allowed := dx
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsVertically(obj, solid) {
			continue
		}
		if dx > 0 && solid.X >= obj.X+obj.W-collisionEpsilon {
			allowed = min(allowed, solid.X-(obj.X+obj.W))
		} else if dx < 0 && solid.X+solid.W <= obj.X+collisionEpsilon {
			allowed = max(allowed, solid.X+solid.W-obj.X)
		}
	}

	obj.X += allowed
	return allowed
}

// resolveVerticalCollision moves the body along Y, landing it on the highest
// surface below or stopping it under a ceiling. Support is rewritten every tick.
func resolveVerticalCollision(body *components.BodyData, obj *resolv.Object) {
	body.Support = nil
	dy := body.Velocity.Y

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := obj.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		obj.Y += dy
		return
	}

	solids := check.ObjectsByTags(tags.ResolvSolid)
	if dy < 0 {
		if ceiling := findCeiling(obj, solids, dy); ceiling != nil {
			obj.Y = ceiling.Y + ceiling.H
			body.Velocity.Y = 0
			return
		}
	} else if floor := findFloor(obj, solids, dy); floor != nil {
		obj.Y = floor.Y - obj.H
		body.Velocity.Y = 0
		body.Support = floor
		return
	}

	obj.Y += dy
}

func findFloor(obj *resolv.Object, solids []*resolv.Object, dy float64) *resolv.Object {
	bottom := obj.Y + obj.H
	var floor *resolv.Object
	for _, solid := range solids {
		if !overlapsHorizontally(obj, solid) {
			continue
		}
		if solid.Y < bottom-landTolerance || solid.Y > bottom+dy {
			continue
		}
		if floor == nil || solid.Y < floor.Y {
			floor = solid
		}
	}
	return floor
}

func findCeiling(obj *resolv.Object, solids []*resolv.Object, dy float64) *resolv.Object {
	var ceiling *resolv.Object
	for _, solid := range solids {
		if !overlapsHorizontally(obj, solid) {
			continue
		}
		underside := solid.Y + solid.H
		if underside > obj.Y+collisionEpsilon || underside < obj.Y+dy {
			continue
		}
		if ceiling == nil || underside > ceiling.Y+ceiling.H {
			ceiling = solid
		}
	}
	return ceiling
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y+collisionEpsilon && a.Y < b.Y+b.H-collisionEpsilon
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X+a.W > b.X+collisionEpsilon && a.X < b.X+b.W-collisionEpsilon
}

// respawnIfOutOfBounds puts a player that fell out of the level back on its
// spawn point.
func respawnIfOutOfBounds(ecs *ecs.ECS, e *donburi.Entry) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	obj := components.Object.Get(e).Object
	if obj.Y <= float64(level.MapHeight) {
		return
	}

	player := components.Player.Get(e)
	body := components.Body.Get(e)
	obj.X = player.SpawnX - obj.W/2
	obj.Y = player.SpawnY - obj.H
	body.Velocity = gamemath.Vec{}
	resetSmoothing(e)
	body.Support = nil
}

func resetSmoothing(e *donburi.Entry) {
	if e.HasComponent(components.Controller) {
		components.Controller.Get(e).RefVelocity = gamemath.Vec{}
	}
}
