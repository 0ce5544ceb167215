package components

import (
	"github.com/automoto/charcontroller/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is the rigid body the controller drives. Velocity is in pixels per
// tick, screen space (+Y down).
type BodyData struct {
	Velocity     gamemath.Vec
	Mass         float64
	Gravity      float64
	Friction     float64
	MaxFallSpeed float64

	// Driven is set when the controller wrote the horizontal velocity this step,
	// so ground friction is skipped.
	Driven bool

	// Support is the collider the body rests on after the last collision pass.
	Support *resolv.Object
}

// AddImpulse applies an instantaneous impulse, changing velocity by impulse/mass.
func (b *BodyData) AddImpulse(x, y float64) {
	b.Velocity.X += gamemath.Impulse(x, b.Mass)
	b.Velocity.Y += gamemath.Impulse(y, b.Mass)
}

var Body = donburi.NewComponentType[BodyData]()
