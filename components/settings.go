package components

import "github.com/yohamta/donburi"

// SettingsData holds the user settings that survive restarts.
type SettingsData struct {
	ShowDebug  bool
	ScaleIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
