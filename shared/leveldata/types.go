// Package leveldata provides TMX level parsing. It has no dependencies on
// ebitengine, donburi, or resolv — pure data only.
package leveldata

// LevelData holds everything the controller scene needs from a TMX level file.
type LevelData struct {
	Name        string
	Ground      []Rect
	Platforms   []PlatformSpawn
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// Rect is a static ground collider.
type Rect struct {
	X, Y, W, H float64
}

// PlatformSpawn describes a moving platform. Axis is "x" or "y".
type PlatformSpawn struct {
	Rect
	Axis     string
	Distance float64 // pixels travelled away from the start position
	Duration float64 // seconds per leg
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
