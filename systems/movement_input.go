package systems

import (
	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovementInput is the movement-input reader: it turns the action
// buffer into the axes and buttons the controller consumes.
func UpdateMovementInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	components.MovementInput.Each(ecs.World, func(e *donburi.Entry) {
		ReadMovementInput(input, components.MovementInput.Get(e))
	})
}

// ReadMovementInput fills mi from the action buffer. The jump flag is latched
// on the press edge and only cleared by the controller after it has run.
func ReadMovementInput(input *components.InputData, mi *components.MovementInputData) {
	mi.Horizontal = rawAxis(
		GetAction(input, cfg.ActionMoveLeft).Pressed,
		GetAction(input, cfg.ActionMoveRight).Pressed,
		input.AxisX,
	)
	// Stick +Y is down, the vertical axis is +1 up.
	mi.Vertical = rawAxis(
		GetAction(input, cfg.ActionMoveDown).Pressed,
		GetAction(input, cfg.ActionMoveUp).Pressed,
		-input.AxisY,
	)

	if GetAction(input, cfg.ActionJump).JustPressed {
		mi.Jump = true
	}
	mi.Run = GetAction(input, cfg.ActionRun).Pressed
}

// rawAxis resolves a negative/positive button pair to -1, 0 or +1. Opposing
// buttons cancel out. With no button held the analog value is used.
func rawAxis(negative, positive bool, analog float64) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	case positive && negative:
		return 0
	}
	return analog
}
