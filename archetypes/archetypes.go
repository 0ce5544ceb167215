package archetypes

import (
	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.Controller,
		components.GroundProbe,
		components.MovementInput,
		components.Animator,
		components.Transform,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Platform,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
