package components

import (
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ControllerData is the character controller's movement state.
type ControllerData struct {
	State       cfg.PlayerState
	FacingRight bool
	Grounded    bool
	InAir       bool

	// RefVelocity is the smoother's own velocity, kept between steps.
	RefVelocity gamemath.Vec
}

var Controller = donburi.NewComponentType[ControllerData]()

// GroundProbeData is the feet probe used for ground detection. Probe is a
// small collider living in the space so the broad phase can find candidates.
type GroundProbeData struct {
	Probe   *resolv.Object
	Radius  float64
	OffsetY float64
	Layer   string
}

var GroundProbe = donburi.NewComponentType[GroundProbeData]()
