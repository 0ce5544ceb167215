package components

import (
	cfg "github.com/automoto/charcontroller/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	AxisX, AxisY    float64 // analog stick beyond the deadzone, 0 otherwise
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// MovementInputData is what the movement-input reader hands to the controller
// each physics step. Jump stays latched until the controller consumes it.
type MovementInputData struct {
	Horizontal float64
	Vertical   float64 // +1 = up
	Jump       bool
	Run        bool
}

var MovementInput = donburi.NewComponentType[MovementInputData]()
