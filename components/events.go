package components

import (
	cfg "github.com/automoto/charcontroller/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StateChangedEvent is published whenever a controller changes PlayerState.
type StateChangedEvent struct {
	Entry *donburi.Entry
	From  cfg.PlayerState
	To    cfg.PlayerState
}

var StateChanged = events.NewEventType[StateChangedEvent]()

// GroundContactEvent is published when a character lands or leaves the ground.
type GroundContactEvent struct {
	Entry    *donburi.Entry
	Grounded bool
}

var GroundContact = events.NewEventType[GroundContactEvent]()
