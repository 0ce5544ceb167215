package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its collider in the resolv space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData holds the shared collision space.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
