package systems

import (
	"testing"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/systems/factory"
	"github.com/automoto/charcontroller/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDetectGround(t *testing.T) {
	tests := []struct {
		name     string
		floorY   float64 // top of the floor, the player's feet are at y=100
		radius   float64
		grounded bool
	}{
		{"standing on floor", 100, 3, true},
		{"floor within radius", 102, 3, true},
		{"floor beyond radius", 102, 1, false},
		{"floor far below", 140, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld(t)
			factory.CreateGround(e, 0, tt.floorY, 400, 32)
			player := factory.CreatePlayer(e, 100, 100, 0)
			components.GroundProbe.Get(player).Radius = tt.radius

			DetectGround(player)

			ctrl := components.Controller.Get(player)
			if ctrl.Grounded != tt.grounded {
				t.Fatalf("Grounded = %v, want %v", ctrl.Grounded, tt.grounded)
			}
			if ctrl.InAir == tt.grounded {
				t.Errorf("InAir = %v with Grounded = %v", ctrl.InAir, ctrl.Grounded)
			}
			if got := components.Animator.Get(player).GetBool(cfg.FlagGrounded); got != tt.grounded {
				t.Errorf("Grounded flag = %v, want %v", got, tt.grounded)
			}
			if !tt.grounded && ctrl.State != cfg.Fall {
				t.Errorf("state = %v, want fall when airborne", ctrl.State)
			}
		})
	}
}

func TestDetectGroundIgnoresOtherLayers(t *testing.T) {
	e := newTestWorld(t)
	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry)

	// Solid but not on the ground layer.
	wall := resolv.NewObject(0, 100, 400, 32, tags.ResolvSolid)
	space.Add(wall)

	player := factory.CreatePlayer(e, 100, 100, 0)
	DetectGround(player)

	if components.Controller.Get(player).Grounded {
		t.Error("collider outside the ground layer must not ground the character")
	}
}

func TestDetectGroundExcludesOwnBody(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 100, 100, 0)

	// Put the body itself on the ground layer; the probe touches its bottom edge.
	components.Object.Get(player).AddTags(cfg.Controller.GroundLayer)

	DetectGround(player)

	if components.Controller.Get(player).Grounded {
		t.Error("the character's own collider must not count as ground")
	}
}

func TestDetectGroundHonoursLayerChange(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateGround(e, 0, 100, 400, 32)
	player := factory.CreatePlayer(e, 100, 100, 0)
	components.GroundProbe.Get(player).Layer = tags.ResolvPlatform

	DetectGround(player)

	if components.Controller.Get(player).Grounded {
		t.Error("static ground is not on the platform layer")
	}
}

func TestDetectGroundLandingClearsInAir(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateGround(e, 0, 100, 400, 32)
	player := factory.CreatePlayer(e, 100, 60, 0)
	ctrl := components.Controller.Get(player)

	var contacts []bool
	components.GroundContact.Subscribe(e.World, func(w donburi.World, event components.GroundContactEvent) {
		contacts = append(contacts, event.Grounded)
	})

	DetectGround(player)
	if !ctrl.InAir || ctrl.Grounded {
		t.Fatalf("expected airborne, got InAir=%v Grounded=%v", ctrl.InAir, ctrl.Grounded)
	}

	obj := components.Object.Get(player)
	obj.Y = 100 - obj.H
	obj.Update()

	DetectGround(player)
	if ctrl.InAir || !ctrl.Grounded {
		t.Fatalf("expected landed, got InAir=%v Grounded=%v", ctrl.InAir, ctrl.Grounded)
	}

	events.ProcessAllEvents(e.World)
	if len(contacts) != 1 || !contacts[0] {
		t.Errorf("contacts = %v, want a single landing", contacts)
	}
}

func TestOverlapCircle(t *testing.T) {
	space := resolv.NewSpace(320, 320, 16, 16)
	probe := resolv.NewObject(0, 0, 2, 2, tags.ResolvProbe)
	space.Add(probe)

	near := resolv.NewObject(40, 40, 20, 20, "ground")
	corner := resolv.NewObject(100, 100, 20, 20, "ground")
	other := resolv.NewObject(40, 70, 20, 20, "water")
	aligned := resolv.NewObject(160, 192, 64, 16, "ground")
	space.Add(near, corner, other, aligned)

	tests := []struct {
		name   string
		x, y   float64
		radius float64
		want   int
	}{
		{"inside", 50, 50, 2, 1},
		{"touching edge", 50, 37, 3, 1},
		{"outside", 50, 30, 3, 0},
		{"corner diagonal miss", 97, 97, 3, 0},
		{"corner diagonal hit", 98, 98, 3, 1},
		{"other layer ignored", 50, 80, 3, 0},
		{"zero radius", 50, 50, 0, 0},
		{"cell aligned floor small radius", 180, 192, 0.5, 1},
		{"cell aligned floor just above", 180, 189.5, 3, 1},
		{"cell aligned floor out of reach", 180, 188.5, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := OverlapCircle(probe, tt.x, tt.y, tt.radius, "ground", nil)
			if len(hits) != tt.want {
				t.Errorf("got %d hits, want %d", len(hits), tt.want)
			}
		})
	}
}
