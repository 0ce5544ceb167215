package systems

import (
	"fmt"
	"math"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControllers feeds each character's movement input to Move and then
// clears the jump latch.
func UpdateControllers(ecs *ecs.ECS) {
	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		mi := components.MovementInput.Get(e)
		Move(e, mi.Horizontal, mi.Vertical, mi.Jump, mi.Run)
		mi.Jump = false
	})
}

// Move selects the character state from the input and ground contact and
// drives the body's velocity toward the input target. Horizontal and vertical
// are raw axes in [-1, 1], vertical +1 being up.
func Move(e *donburi.Entry, horizontal, vertical float64, jump, run bool) {
	ctrl := components.Controller.Get(e)
	body := components.Body.Get(e)

	if ctrl.Grounded {
		if math.Abs(horizontal) > cfg.Controller.InputEpsilon {
			speed := cfg.Controller.WalkSpeed
			state := cfg.Walk
			if run {
				speed = cfg.Controller.RunSpeed
				state = cfg.Run
			}
			SetPlayerState(e, state)
			driveVelocity(ctrl, body, horizontal*speed, vertical*speed)
		} else {
			SetPlayerState(e, cfg.Idle)
		}

		if jump {
			SetPlayerState(e, cfg.Jump)
			body.AddImpulse(0, -cfg.Controller.JumpImpulse)
		}
	} else {
		SetPlayerState(e, cfg.Fall)
	}

	if (ctrl.FacingRight && horizontal < 0) || (!ctrl.FacingRight && horizontal > 0) {
		Flip(e)
	}
}

// driveVelocity smooths the body velocity toward the target, given in pixels
// per second.
func driveVelocity(ctrl *components.ControllerData, body *components.BodyData, targetX, targetY float64) {
	dt := cfg.FixedDelta()
	smoothing := cfg.Controller.MovementSmoothing

	body.Velocity.X = gamemath.SmoothDamp(body.Velocity.X, targetX*dt, &ctrl.RefVelocity.X, smoothing, dt)
	if cfg.Controller.VerticalDrive {
		// Screen space is +Y down.
		body.Velocity.Y = gamemath.SmoothDamp(body.Velocity.Y, -targetY*dt, &ctrl.RefVelocity.Y, smoothing, dt)
	}
	body.Driven = true
}

// Flip toggles the facing direction and mirrors the render transform.
func Flip(e *donburi.Entry) {
	ctrl := components.Controller.Get(e)
	ctrl.FacingRight = !ctrl.FacingRight

	if e.HasComponent(components.Transform) {
		t := components.Transform.Get(e)
		t.ScaleX = -t.ScaleX
	}
}

// SetPlayerState switches the controller state and writes the matching
// animator flags. Setting the current state again does nothing.
func SetPlayerState(e *donburi.Entry, state cfg.PlayerState) {
	ctrl := components.Controller.Get(e)
	if ctrl.State == state {
		return
	}

	animator := components.Animator.Get(e)
	switch state {
	case cfg.Idle:
		animator.SetBool(cfg.FlagWalk, false)
		animator.SetBool(cfg.FlagRun, false)
		animator.SetBool(cfg.FlagJump, false)
		animator.SetBool(cfg.FlagFall, false)
	case cfg.Walk:
		animator.SetBool(cfg.FlagWalk, true)
		animator.SetBool(cfg.FlagRun, false)
		animator.SetBool(cfg.FlagJump, false)
		animator.SetBool(cfg.FlagFall, false)
	case cfg.Run:
		animator.SetBool(cfg.FlagRun, true)
		animator.SetBool(cfg.FlagWalk, false)
		animator.SetBool(cfg.FlagJump, false)
		animator.SetBool(cfg.FlagFall, false)
	case cfg.Jump:
		animator.SetBool(cfg.FlagJump, true)
		animator.SetBool(cfg.FlagFall, false)
	case cfg.Fall:
		animator.SetBool(cfg.FlagFall, true)
		animator.SetBool(cfg.FlagJump, false)
	default:
		panic(fmt.Sprintf("unhandled player state: %v", state))
	}

	from := ctrl.State
	ctrl.State = state

	if e.World != nil {
		components.StateChanged.Publish(e.World, components.StateChangedEvent{
			Entry: e,
			From:  from,
			To:    state,
		})
	}
}
