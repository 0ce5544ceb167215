package components

import "github.com/yohamta/donburi"

// TransformData holds the render scale. A negative ScaleX mirrors the sprite.
type TransformData struct {
	ScaleX, ScaleY float64
}

var Transform = donburi.NewComponentType[TransformData]()
