package scenes

import (
	"math"
	"testing"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/systems"
	"github.com/automoto/charcontroller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// stepSimulation runs the device-independent part of a tick.
func stepSimulation(e *ecs.ECS) {
	systems.UpdatePlatforms(e)
	systems.UpdateGroundDetection(e)
	systems.UpdateControllers(e)
	systems.UpdatePhysics(e)
	systems.UpdateCollisions(e)
	systems.UpdateAnimator(e)
	systems.UpdateEffects(e)
	systems.UpdateCamera(e)
	events.ProcessAllEvents(e.World)
}

func TestNewWorldBuildsLevel(t *testing.T) {
	world, err := NewWorld("meadow", components.SettingsData{})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	counts := map[string]int{}
	tags.Ground.Each(world.World, func(*donburi.Entry) { counts["ground"]++ })
	tags.Platform.Each(world.World, func(*donburi.Entry) { counts["platform"]++ })
	tags.Player.Each(world.World, func(*donburi.Entry) { counts["player"]++ })

	if counts["ground"] == 0 || counts["platform"] == 0 || counts["player"] != 1 {
		t.Errorf("entity counts = %v", counts)
	}
	if _, ok := components.Camera.First(world.World); !ok {
		t.Error("camera missing")
	}
	if _, ok := components.Settings.First(world.World); !ok {
		t.Error("settings missing")
	}
}

func TestNewWorldUnknownLevel(t *testing.T) {
	if _, err := NewWorld("no-such-level", components.SettingsData{}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestPlayerSettlesOnGroundThenWalks(t *testing.T) {
	world, err := NewWorld("meadow", components.SettingsData{})
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	player, _ := tags.Player.First(world.World)
	ctrl := components.Controller.Get(player)
	obj := components.Object.Get(player)
	mi := components.MovementInput.Get(player)

	for i := 0; i < 120; i++ {
		stepSimulation(world)
	}
	if !ctrl.Grounded || ctrl.State != cfg.Idle {
		t.Fatalf("after settling: grounded=%v state=%v", ctrl.Grounded, ctrl.State)
	}

	startX := obj.X
	mi.Horizontal = 1
	for i := 0; i < 30; i++ {
		stepSimulation(world)
	}
	if ctrl.State != cfg.Walk || obj.X <= startX {
		t.Errorf("walking: state=%v x %v -> %v", ctrl.State, startX, obj.X)
	}

	mi.Horizontal = 0
	mi.Jump = true
	stepSimulation(world)
	if mi.Jump {
		t.Error("jump latch should be consumed")
	}
	body := components.Body.Get(player)
	if body.Velocity.Y >= 0 {
		t.Errorf("velocity.Y = %v after jump, want upward", body.Velocity.Y)
	}

	airborne := false
	for i := 0; i < 120; i++ {
		stepSimulation(world)
		if !ctrl.Grounded {
			airborne = true
		}
	}
	if !airborne {
		t.Error("jump never left the ground")
	}
	if !ctrl.Grounded || math.Abs(body.Velocity.Y) > 1e-9 {
		t.Errorf("after landing: grounded=%v velocity.Y=%v", ctrl.Grounded, body.Velocity.Y)
	}
}
