package systems

import (
	"strings"
	"testing"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/shared/gamemath"
)

func TestHUDLines(t *testing.T) {
	ctrl := &components.ControllerData{State: cfg.Run, Grounded: true, FacingRight: false}
	body := &components.BodyData{Velocity: gamemath.Vec{X: 2.5, Y: -1}}

	got := strings.Join(HUDLines(ctrl, body), "\n")
	for _, want := range []string{"state: run", "grounded: true", "velocity: 2.50, -1.00", "facing: left"} {
		if !strings.Contains(got, want) {
			t.Errorf("HUD missing %q in:\n%s", want, got)
		}
	}
}
