package config

import (
	"image/color"

	"github.com/automoto/charcontroller/tags"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every scene.
const Default ecs.LayerID = 0

// ControllerConfig contains the character controller tuning values
type ControllerConfig struct {
	// Movement (pixels per second, scaled by the fixed step)
	WalkSpeed float64
	RunSpeed  float64

	// Jump
	JumpImpulse float64 // upward impulse applied once per jump
	Mass        float64

	// Smoothing time constant in seconds (0..1)
	MovementSmoothing float64

	// Ground probe
	GroundCheckRadius  float64 // radius of the overlap circle at the feet, in pixels
	GroundCheckOffsetY float64 // vertical offset of the probe from the body bottom
	GroundLayer        string  // resolv tag that marks ground colliders

	// Horizontal input below this magnitude counts as no input
	InputEpsilon float64

	// When set, the vertical axis drives the vertical velocity target as well
	VerticalDrive bool

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // pixels per tick squared
	Friction     float64 // ground friction applied to undriven bodies
	MaxFallSpeed float64
	MaxRiseSpeed float64

	// Spatial hash cell size
	CellSize int
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	// Ticks per frame
	IdleSpeed int
	WalkSpeed int
	RunSpeed  int
	AirSpeed  int

	// Frames per clip
	FrameCount int
}

// CameraConfig contains follow camera configuration
type CameraConfig struct {
	FollowSmoothing         float64
	LookAheadDistanceX      float64
	LookAheadSmoothing      float64
	LookAheadSpeedThreshold float64
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	LerpSpeed  float64 // how fast to return to normal scale
}

// PlatformConfig contains moving platform defaults
type PlatformConfig struct {
	DefaultDistance float64 // pixels travelled each way
	DefaultDuration float64 // seconds per leg
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool   // draw colliders and the ground probe
	LevelName   string // level stem to load, empty = first level
	TuningPath  string // optional YAML tuning file, watched for changes
}

// WindowConfig lists the window scale factors the player can cycle through
type WindowConfig struct {
	Scales            []int
	DefaultScaleIndex int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Controller ControllerConfig
var Physics PhysicsConfig
var Animation AnimationConfig
var Camera CameraConfig
var SquashStretch SquashStretchConfig
var Platform PlatformConfig
var Debug DebugConfig
var Window WindowConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	GroundTop  = color.RGBA{R: 90, G: 160, B: 70, A: 255}
	GroundFill = color.RGBA{R: 70, G: 55, B: 45, A: 255}
	Sky        = color.RGBA{R: 30, G: 34, B: 52, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue   = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	HUDBack    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Controller = ControllerConfig{
		WalkSpeed: 150.0,
		RunSpeed:  300.0,

		JumpImpulse: 9.0,
		Mass:        1.0,

		MovementSmoothing: 0.1,

		GroundCheckRadius:  3.0,
		GroundCheckOffsetY: 0,
		GroundLayer:        tags.ResolvGround,

		InputEpsilon:  0.01,
		VerticalDrive: false,

		FrameWidth:      24,
		FrameHeight:     32,
		CollisionWidth:  16,
		CollisionHeight: 30,
	}

	Physics = PhysicsConfig{
		Gravity:      0.5,
		Friction:     0.5,
		MaxFallSpeed: 10.0,
		MaxRiseSpeed: -16.0,
		CellSize:     16,
	}

	Animation = AnimationConfig{
		IdleSpeed:  12,
		WalkSpeed:  8,
		RunSpeed:   5,
		AirSpeed:   6,
		FrameCount: 4,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      48,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.5,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.8,
		JumpScaleY: 1.2,
		LandScaleX: 1.25,
		LandScaleY: 0.8,
		LerpSpeed:  0.15,
	}

	Window = WindowConfig{
		Scales:            []int{1, 2, 3},
		DefaultScaleIndex: 1,
	}

	Platform = PlatformConfig{
		DefaultDistance: 96,
		DefaultDuration: 2,
	}
}

// FixedDelta returns the duration of one physics step in seconds.
func FixedDelta() float64 {
	return 1.0 / float64(C.TPS)
}
