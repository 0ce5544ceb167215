package systems

import (
	"testing"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/yohamta/donburi/features/events"
)

func TestJumpTriggersStretch(t *testing.T) {
	e, player := newGroundedPlayer(t)
	SubscribeEffects(e.World)

	Move(player, 0, 0, true, false)
	events.ProcessAllEvents(e.World)

	if !player.HasComponent(components.SquashStretch) {
		t.Fatal("jump should add a squash/stretch effect")
	}
	ss := components.SquashStretch.Get(player)
	if ss.ScaleX != cfg.SquashStretch.JumpScaleX || ss.ScaleY != cfg.SquashStretch.JumpScaleY {
		t.Errorf("scale = (%v, %v), want jump stretch", ss.ScaleX, ss.ScaleY)
	}
}

func TestLandingTriggersSquash(t *testing.T) {
	e, player := newGroundedPlayer(t)
	SubscribeEffects(e.World)

	OnGroundContact(e.World, components.GroundContactEvent{Entry: player, Grounded: true})

	ss := components.SquashStretch.Get(player)
	if ss.ScaleX != cfg.SquashStretch.LandScaleX || ss.ScaleY != cfg.SquashStretch.LandScaleY {
		t.Errorf("scale = (%v, %v), want land squash", ss.ScaleX, ss.ScaleY)
	}
}

func TestLeavingGroundDoesNotSquash(t *testing.T) {
	e, player := newGroundedPlayer(t)

	OnGroundContact(e.World, components.GroundContactEvent{Entry: player, Grounded: false})

	if player.HasComponent(components.SquashStretch) {
		t.Error("leaving the ground should not squash")
	}
}

func TestSquashStretchSettles(t *testing.T) {
	e, player := newGroundedPlayer(t)
	TriggerSquashStretch(player, 1.3, 0.7)

	for i := 0; i < 200 && player.HasComponent(components.SquashStretch); i++ {
		UpdateEffects(e)
	}

	if player.HasComponent(components.SquashStretch) {
		t.Error("squash/stretch should be removed once back at normal scale")
	}
}
