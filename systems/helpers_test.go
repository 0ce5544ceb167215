package systems

import (
	"testing"

	"github.com/automoto/charcontroller/components"
	"github.com/automoto/charcontroller/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld returns an ECS with an empty collision space.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 480, 16, 16)
	return e
}

// newGroundedPlayer spawns a player whose feet rest on a floor at y=200.
func newGroundedPlayer(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := newTestWorld(t)
	factory.CreateGround(e, 0, 200, 640, 32)
	player := factory.CreatePlayer(e, 100, 200, 0)
	components.Controller.Get(player).Grounded = true
	return e, player
}
