package menu

import (
	"errors"
	"image"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
)

// Card display size in pixels. Every entry image is resized to it at build time.
const (
	DisplayWidth  = 200
	DisplayHeight = 112
)

var (
	// ErrImageUnresolvable reports an entry whose recap image could not be loaded or decoded.
	ErrImageUnresolvable = errors.New("recap image unresolvable")
	// ErrNoEntries reports a schedule where no entry could be built.
	ErrNoEntries = errors.New("no menu entries")
)

// Entry is one card in the carousel: a game, its display-sized image and pre-measured labels.
type Entry struct {
	Game         domaingames.Game
	Image        image.Image
	TitleWidth   int
	CaptionWidth int
}

// Title is the label drawn above a highlighted card.
func (e Entry) Title() string {
	return e.Game.Label()
}

// Caption is the recap headline drawn below a highlighted card.
func (e Entry) Caption() string {
	return e.Game.RecapLabel
}
