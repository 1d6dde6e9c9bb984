package carousel

import "github.com/preston-bernstein/mlb-browser/internal/menu"

// Card geometry in pixels.
const (
	CardWidth  = float64(menu.DisplayWidth)
	CardHeight = float64(menu.DisplayHeight)
	// Pitch is the centre-to-centre distance between neighbouring cards.
	Pitch = CardWidth * 1.3
	// HighlightScale is the extra scale the selected card grows by over a transition.
	HighlightScale = 0.5
	// LabelGap separates a highlighted card from its labels.
	LabelGap = 8.0
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// LabelKind distinguishes the two labels of a highlighted card.
type LabelKind int

const (
	// LabelTitle is "home vs away", drawn above the card. Its Y is the bottom of the text.
	LabelTitle LabelKind = iota
	// LabelCaption is the recap headline, drawn below the card. Its Y is the top of the text.
	LabelCaption
)

// Label is a horizontally centred piece of text attached to a card.
type Label struct {
	Kind LabelKind
	Text string
	X    float64
	Y    float64
}

// DrawCommand places one entry on screen. X and Y are the top-left corner of the scaled card.
type DrawCommand struct {
	Entry       *menu.Entry
	Index       int
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Scale       float64
	Highlighted bool
	Labels      []Label
}

// ScrollOffset is the index-space position the carousel is centred on.
func (c *Controller) ScrollOffset() float64 {
	sel := float64(c.current())
	prev := float64(c.previous)
	return prev + c.progress*(sel-prev)
}

// Scale returns the draw scale of entry i.
func (c *Controller) Scale(i int) float64 {
	if i == c.current() {
		return 1 + c.progress*HighlightScale
	}
	return 1
}

// Project computes the draw commands for the current state, one per entry in order.
// It reads state only; no selection is treated as index 0.
func (c *Controller) Project(vp Viewport) []DrawCommand {
	if len(c.entries) == 0 {
		return nil
	}

	centerX, centerY := vp.Width/2, vp.Height/2
	scroll := c.ScrollOffset()
	sel := c.current()

	cmds := make([]DrawCommand, 0, len(c.entries))
	for i := range c.entries {
		scale := c.Scale(i)
		w, h := CardWidth*scale, CardHeight*scale
		x := centerX + Pitch*(float64(i)-scroll)
		cmd := DrawCommand{
			Entry:       &c.entries[i],
			Index:       i,
			X:           x - w/2,
			Y:           centerY - h/2,
			Width:       w,
			Height:      h,
			Scale:       scale,
			Highlighted: i == sel,
		}
		if cmd.Highlighted {
			entry := &c.entries[i]
			cmd.Labels = []Label{
				{
					Kind: LabelTitle,
					Text: entry.Title(),
					X:    x - float64(entry.TitleWidth)/2,
					Y:    cmd.Y - LabelGap,
				},
				{
					Kind: LabelCaption,
					Text: entry.Caption(),
					X:    x - float64(entry.CaptionWidth)/2,
					Y:    cmd.Y + h + LabelGap,
				},
			}
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}
