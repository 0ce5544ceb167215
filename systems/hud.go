package systems

import (
	"fmt"

	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/fonts"
	"github.com/automoto/charcontroller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 6
	hudPadding    = 4
	hudLineHeight = 14
	hudWidth      = 180
)

var hudTextOp = &text.DrawOptions{}

// DrawHUD renders the controller readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	ctrl := components.Controller.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	lines := HUDLines(ctrl, body)

	vector.FillRect(screen, hudMargin, hudMargin,
		hudWidth, float32(len(lines)*hudLineHeight+hudPadding*2), cfg.HUDBack, false)

	face := fonts.HUD.Face()
	for i, line := range lines {
		hudTextOp.GeoM.Reset()
		hudTextOp.GeoM.Translate(hudMargin+hudPadding, float64(hudMargin+hudPadding+i*hudLineHeight))
		hudTextOp.ColorScale.Reset()
		hudTextOp.ColorScale.ScaleWithColor(cfg.White)
		text.Draw(screen, line, face, hudTextOp)
	}

	help := keyboardHelp
	if inputEntry, ok := components.Input.First(ecs.World); ok &&
		components.Input.Get(inputEntry).LastInputMethod == components.InputGamepad {
		help = gamepadHelp
	}
	drawHelp(screen, help)
}

// HUDLines formats the controller state shown on screen.
func HUDLines(ctrl *components.ControllerData, body *components.BodyData) []string {
	facing := "right"
	if !ctrl.FacingRight {
		facing = "left"
	}
	return []string{
		fmt.Sprintf("state: %s", ctrl.State),
		fmt.Sprintf("grounded: %t", ctrl.Grounded),
		fmt.Sprintf("velocity: %.2f, %.2f", body.Velocity.X, body.Velocity.Y),
		fmt.Sprintf("facing: %s", facing),
	}
}

const (
	keyboardHelp = "arrows/WASD move  space jump  shift run  F1 debug  F2 scale  F3 level"
	gamepadHelp  = "stick move  A jump  X run  back debug  start level"
)

func drawHelp(screen *ebiten.Image, help string) {
	hudTextOp.GeoM.Reset()
	hudTextOp.GeoM.Translate(hudMargin, float64(screen.Bounds().Dy()-hudLineHeight-hudMargin))
	hudTextOp.ColorScale.Reset()
	hudTextOp.ColorScale.ScaleWithColor(cfg.Grey)
	text.Draw(screen, help, fonts.HUDSmall.Face(), hudTextOp)
}
