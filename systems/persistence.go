package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowDebug  bool   `json:"showDebug"`
	ScaleIndex int    `json:"scaleIndex"`
	LastLevel  string `json:"lastLevel,omitempty"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "charcontroller",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// DefaultSettings are used when nothing was saved yet.
func DefaultSettings() *SavedSettings {
	return &SavedSettings{
		ShowDebug:  cfg.Debug.ShowOverlay,
		ScaleIndex: cfg.Window.DefaultScaleIndex,
	}
}

// LoadSettings loads settings from disk, falling back to defaults.
func LoadSettings() *SavedSettings {
	if !gdataInitialized || gdataManager == nil {
		return DefaultSettings()
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return DefaultSettings()
	}
	if len(data) == 0 {
		return DefaultSettings()
	}

	settings, err := DecodeSettings(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return DefaultSettings()
	}
	return settings
}

// DecodeSettings parses saved settings, clamping values that no longer fit
// the current configuration.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	if settings.ScaleIndex < 0 || settings.ScaleIndex >= len(cfg.Window.Scales) {
		settings.ScaleIndex = cfg.Window.DefaultScaleIndex
	}
	return settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings saves the live settings component along with the level
// being played.
func SaveCurrentSettings(s *components.SettingsData, level string) error {
	return SaveSettings(&SavedSettings{
		ShowDebug:  s.ShowDebug,
		ScaleIndex: s.ScaleIndex,
		LastLevel:  level,
	})
}

// ApplyWindowScale resizes the window for a scale index.
func ApplyWindowScale(index int) {
	if index < 0 || index >= len(cfg.Window.Scales) {
		return
	}
	scale := cfg.Window.Scales[index]
	ebiten.SetWindowSize(cfg.C.Width*scale, cfg.C.Height*scale)
}
