package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the font wrapped for ebiten's text/v2 renderer.
func (f FontName) Face() text.Face {
	face, ok := textFaces[f]
	if !ok {
		face = text.NewGoXFace(getFont(f))
		textFaces[f] = face
	}
	return face
}

var (
	fonts     = map[FontName]font.Face{}
	textFaces = map[FontName]text.Face{}
)

// LoadDefaults registers the HUD faces built from the Go regular font.
func LoadDefaults() error {
	if err := LoadFontWithSize(HUD, goregular.TTF, 12); err != nil {
		return err
	}
	return LoadFontWithSize(HUDSmall, goregular.TTF, 9)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(textFaces, name)
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
