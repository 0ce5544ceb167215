package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/systems"
	"github.com/automoto/charcontroller/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	settings     components.SettingsData
	once         sync.Once
}

// NewPlatformerScene creates a scene for the named level. An empty name picks
// the first embedded level.
func NewPlatformerScene(sc SceneChanger, levelName string, settings components.SettingsData) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelName: levelName, settings: settings}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	events.ProcessAllEvents(ps.ecs.World)

	if ps.nextLevelRequested() {
		ps.changeLevel()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	world, err := NewWorld(ps.levelName, ps.settings)
	if err != nil && ps.levelName != "" {
		log.Printf("Warning: %v, loading the first level instead", err)
		world, err = NewWorld("", ps.settings)
	}
	if err != nil {
		panic(err)
	}
	ps.ecs = world

	AddRenderers(ps.ecs)
}

// NewWorld builds the ECS for a level: systems in tick order, the collision
// space, level geometry, the player and the camera. Renderers are added
// separately so the world can be stepped without a graphics context.
func NewWorld(levelName string, settings components.SettingsData) (*ecs.ECS, error) {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateMovementInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateTuning)
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdateGroundDetection)
	ecs.AddSystem(systems.UpdateControllers)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateAnimator)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateCamera)

	systems.SubscribeEffects(ecs.World)

	// Create the level entity and load level data FIRST.
	level, err := factory.CreateLevel(ecs, levelName)
	if err != nil {
		return nil, fmt.Errorf("failed to create level: %w", err)
	}
	levelData := components.Level.Get(level).CurrentLevel

	// Now create the space for collision detection using the level's dimensions.
	factory.CreateSpace(ecs,
		levelData.MapWidth,
		levelData.MapHeight,
		cfg.Physics.CellSize, cfg.Physics.CellSize,
	)

	for _, ground := range levelData.Ground {
		factory.CreateGround(ecs, ground.X, ground.Y, ground.W, ground.H)
	}
	for _, platform := range levelData.Platforms {
		factory.CreatePlatform(ecs, platform)
	}

	spawn := levelData.SpawnPoints[0]
	factory.CreatePlayer(ecs, spawn.X, spawn.Y, 0)

	// Start the camera on the spawn to prevent panning from (0,0)
	camX, camY := systems.ClampCameraTarget(spawn.X, spawn.Y,
		float64(levelData.MapWidth), float64(levelData.MapHeight))
	factory.CreateCamera(ecs, camX, camY)

	factory.CreateSettings(ecs, settings)

	log.Printf("Loaded level %s (%dx%d)", levelData.Name, levelData.MapWidth, levelData.MapHeight)
	return ecs, nil
}

// AddRenderers registers the draw passes, back to front.
func AddRenderers(ecs *ecs.ECS) {
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
}

func (ps *PlatformerScene) nextLevelRequested() bool {
	inputEntry, ok := components.Input.First(ps.ecs.World)
	if !ok {
		return false
	}
	return systems.GetAction(components.Input.Get(inputEntry), cfg.ActionNextLevel).JustPressed
}

func (ps *PlatformerScene) changeLevel() {
	levelEntry, ok := components.Level.First(ps.ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	next := factory.NextLevelName(level.LevelNames, level.CurrentLevel.Name)

	settings := ps.settings
	if entry, ok := components.Settings.First(ps.ecs.World); ok {
		settings = *components.Settings.Get(entry)
	}
	if err := systems.SaveCurrentSettings(&settings, next); err != nil {
		log.Printf("Warning: %v", err)
	}

	ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, next, settings))
}
