package carousel

import "context"

// Input is a discrete navigation key press.
type Input int

const (
	InputNone Input = iota
	InputRight
	InputLeft
	InputUp
	InputDown
)

func (i Input) String() string {
	switch i {
	case InputRight:
		return "right"
	case InputLeft:
		return "left"
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	default:
		return "none"
	}
}

// HandleInput maps a key press to a navigation operation.
func (c *Controller) HandleInput(ctx context.Context, in Input) {
	switch in {
	case InputRight:
		c.SelectNext()
	case InputLeft:
		c.SelectPrevious()
	case InputUp:
		c.AdvanceDay(ctx, 1)
	case InputDown:
		c.AdvanceDay(ctx, -1)
	}
}
