package systems

import (
	"log"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay and window scale hotkeys, saving
// after every change.
func UpdateSettings(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	settings := components.Settings.Get(settingsEntry)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ShowDebug = !settings.ShowDebug
		changed = true
	}
	if GetAction(input, cfg.ActionCycleScale).JustPressed {
		settings.ScaleIndex = NextScaleIndex(settings.ScaleIndex)
		ApplyWindowScale(settings.ScaleIndex)
		changed = true
	}

	if changed {
		if err := SaveCurrentSettings(settings, currentLevelName(ecs)); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// NextScaleIndex cycles through the configured window scales.
func NextScaleIndex(index int) int {
	if len(cfg.Window.Scales) == 0 {
		return 0
	}
	return (index + 1) % len(cfg.Window.Scales)
}

func currentLevelName(ecs *ecs.ECS) string {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return ""
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil {
		return ""
	}
	return level.CurrentLevel.Name
}
