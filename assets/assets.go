package assets

import (
	"embed"
	"image/color"
	"math"

	cfg "github.com/automoto/charcontroller/config"
	"github.com/automoto/charcontroller/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevels parses every embedded level.
func LoadLevels() (map[string]*leveldata.LevelData, []string, error) {
	return leveldata.LoadAllLevels(assetFS, "levels")
}

// Per-state body colors for the generated character sheet.
var stateColors = map[cfg.PlayerState]color.RGBA{
	cfg.Idle: {R: 220, G: 220, B: 230, A: 255},
	cfg.Walk: {R: 120, G: 200, B: 255, A: 255},
	cfg.Run:  {R: 255, G: 170, B: 60, A: 255},
	cfg.Jump: {R: 140, G: 255, B: 140, A: 255},
	cfg.Fall: {R: 255, G: 110, B: 140, A: 255},
}

var characterFrames map[cfg.PlayerState][]*ebiten.Image

// CharacterFrames returns the generated frames for every PlayerState. The art
// faces right; the renderer mirrors it using the transform scale.
func CharacterFrames() map[cfg.PlayerState][]*ebiten.Image {
	if characterFrames != nil {
		return characterFrames
	}

	w := cfg.Controller.FrameWidth
	h := cfg.Controller.FrameHeight
	count := cfg.Animation.FrameCount

	characterFrames = make(map[cfg.PlayerState][]*ebiten.Image, len(stateColors))
	for state, body := range stateColors {
		frames := make([]*ebiten.Image, count)
		for i := range frames {
			frames[i] = drawCharacterFrame(state, body, i, count, w, h)
		}
		characterFrames[state] = frames
	}
	return characterFrames
}

func drawCharacterFrame(state cfg.PlayerState, body color.RGBA, frame, count, w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	phase := 2 * math.Pi * float64(frame) / float64(count)

	bob := float32(0)
	stride := float32(0)
	switch state {
	case cfg.Idle:
		bob = float32(math.Sin(phase))
	case cfg.Walk:
		stride = float32(3 * math.Sin(phase))
	case cfg.Run:
		stride = float32(5 * math.Sin(phase))
		bob = float32(math.Abs(math.Sin(phase))) * -1.5
	}

	fw, fh := float32(w), float32(h)

	// Legs
	legY := fh * 0.7
	vector.FillRect(img, fw*0.3+stride, legY, 4, fh-legY, cfg.DarkBlue, false)
	vector.FillRect(img, fw*0.55-stride, legY, 4, fh-legY, cfg.DarkBlue, false)

	// Body
	vector.FillRect(img, fw*0.2, fh*0.25+bob, fw*0.6, fh*0.48, body, false)

	// Head and eye on the facing side
	vector.FillCircle(img, fw*0.5, fh*0.16+bob, fw*0.2, body, true)
	vector.FillCircle(img, fw*0.62, fh*0.14+bob, 1.5, color.Black, true)

	if state == cfg.Jump || state == cfg.Fall {
		armY := fh * 0.3
		if state == cfg.Fall {
			armY = fh * 0.22
		}
		vector.FillRect(img, 0, armY+bob, fw*0.2, 3, body, false)
		vector.FillRect(img, fw*0.8, armY+bob, fw*0.2, 3, body, false)
	}

	return img
}
