package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// PlatformData drives a moving platform along one axis. The offset from the
// origin comes from a *gween.Sequence that is rebuilt each time it finishes.
type PlatformData struct {
	Tween            *gween.Sequence
	Axis             string  // "x" or "y"
	Distance         float64 // signed offset at the far end
	Duration         float64 // seconds per leg
	OriginX, OriginY float64
	// Movement applied during the last update, used to carry riders.
	DeltaX, DeltaY float64
}

// NewPlatformTween builds one out-and-back leg pair.
func NewPlatformTween(distance, duration float64) *gween.Sequence {
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(distance), float32(duration), ease.InOutSine),
		gween.New(float32(distance), 0, float32(duration), ease.InOutSine),
	)
	return tw
}

var Platform = donburi.NewComponentType[PlatformData]()
