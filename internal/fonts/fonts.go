package fonts

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	TitleSize   = 18
	CaptionSize = 13
	dpi         = 72
)

// Faces holds the two label faces a highlighted card uses.
type Faces struct {
	Title   font.Face
	Caption font.Face
}

// Load parses the embedded Go Regular font at the title and caption sizes.
func Load() (Faces, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return Faces{}, fmt.Errorf("parse font: %w", err)
	}
	title, err := newFace(parsed, TitleSize)
	if err != nil {
		return Faces{}, err
	}
	caption, err := newFace(parsed, CaptionSize)
	if err != nil {
		return Faces{}, err
	}
	return Faces{Title: title, Caption: caption}, nil
}

// Basic returns the fixed 7x13 bitmap face for both labels.
func Basic() Faces {
	return Faces{Title: basicfont.Face7x13, Caption: basicfont.Face7x13}
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.0fpt: %w", size, err)
	}
	return face, nil
}

// Measure returns the advance width of s in whole pixels.
func Measure(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	return font.MeasureString(face, s).Ceil()
}
