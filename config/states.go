package config

import "fmt"

// PlayerState identifies the movement state of a character. The state drives
// the animator flags, see systems.SetPlayerState.
type PlayerState int

const (
	StateNone PlayerState = -1

	Idle PlayerState = iota - 1
	Walk
	Run
	Jump
	Fall
)

var stateNames = map[PlayerState]string{
	StateNone: "none",
	Idle:      "idle",
	Walk:      "walk",
	Run:       "run",
	Jump:      "jump",
	Fall:      "fall",
}

func (s PlayerState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Animator flag names written by the controller.
const (
	FlagWalk     = "Walk"
	FlagRun      = "Run"
	FlagJump     = "Jump"
	FlagFall     = "Fall"
	FlagGrounded = "Grounded"
)
