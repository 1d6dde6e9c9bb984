package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/preston-bernstein/mlb-browser/internal/carousel"
)

var keyInputs = []struct {
	key   ebiten.Key
	input carousel.Input
}{
	{ebiten.KeyArrowRight, carousel.InputRight},
	{ebiten.KeyArrowLeft, carousel.InputLeft},
	{ebiten.KeyArrowUp, carousel.InputUp},
	{ebiten.KeyArrowDown, carousel.InputDown},
}

// pressedInputs returns the navigation keys pressed this frame, in a fixed order.
func pressedInputs() []carousel.Input {
	var out []carousel.Input
	for _, k := range keyInputs {
		if inpututil.IsKeyJustPressed(k.key) {
			out = append(out, k.input)
		}
	}
	return out
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
