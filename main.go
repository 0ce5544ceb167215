package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/charcontroller/components"
	"github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/fonts"
	"github.com/automoto/charcontroller/scenes"
	"github.com/automoto/charcontroller/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(level string, settings components.SettingsData) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, level, settings)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.LevelName, "level", "", "level to load (file name without .tmx)")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML tuning file, reloaded on change")
	flag.BoolVar(&config.Debug.ShowOverlay, "debug", false, "start with the collider overlay enabled")
	flag.Parse()

	if config.Debug.TuningPath != "" {
		tuning, err := config.LoadTuning(config.Debug.TuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning.Apply()

		watcher, err := config.WatchTuning(config.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: tuning hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			systems.SetTuningSource(watcher.Updates())
		}
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved := systems.LoadSettings()
	if config.Debug.ShowOverlay {
		saved.ShowDebug = true
	}

	level := config.Debug.LevelName
	if level == "" {
		level = saved.LastLevel
	}

	ebiten.SetWindowTitle("charcontroller")
	ebiten.SetTPS(config.C.TPS)
	systems.ApplyWindowScale(saved.ScaleIndex)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	settings := components.SettingsData{
		ShowDebug:  saved.ShowDebug,
		ScaleIndex: saved.ScaleIndex,
	}
	if err := ebiten.RunGame(NewGame(level, settings)); err != nil {
		log.Fatal(err)
	}
}
