package systems

import (
	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimator picks the clip matching the animator flags and advances it.
func UpdateAnimator(ecs *ecs.ECS) {
	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		animator := components.Animator.Get(e)

		rising := false
		if e.HasComponent(components.Body) {
			rising = components.Body.Get(e).Velocity.Y < 0
		}

		animator.SetClip(ResolveClip(animator, rising))
		if animator.CurrentAnimation != nil {
			animator.CurrentAnimation.Update()
		}
	})
}

// ResolveClip maps the flags to a clip, airborne flags first. An airborne
// character still moving up keeps the jump clip until the apex.
func ResolveClip(animator *components.AnimatorData, rising bool) cfg.PlayerState {
	airborne := !animator.GetBool(cfg.FlagGrounded)

	switch {
	case animator.GetBool(cfg.FlagFall) && airborne && rising:
		return cfg.Jump
	case animator.GetBool(cfg.FlagFall):
		return cfg.Fall
	case animator.GetBool(cfg.FlagJump):
		return cfg.Jump
	case animator.GetBool(cfg.FlagRun):
		return cfg.Run
	case animator.GetBool(cfg.FlagWalk):
		return cfg.Walk
	}
	return cfg.Idle
}
