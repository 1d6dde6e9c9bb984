package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/preston-bernstein/mlb-browser/internal/carousel"
	"github.com/preston-bernstein/mlb-browser/internal/fonts"
	"github.com/preston-bernstein/mlb-browser/internal/logging"
)

var (
	fillColor  = color.RGBA{0x12, 0x2b, 0x1d, 0xff}
	labelColor = color.White
)

// Options configures the window and the assets the game draws with.
type Options struct {
	Width      int
	Height     int
	Title      string
	Background image.Image
	Faces      fonts.Faces
	Logger     *slog.Logger
}

// Game adapts a carousel controller to ebiten's Update/Draw/Layout loop.
type Game struct {
	ctx        context.Context
	controller *carousel.Controller
	logger     *slog.Logger

	titleFace   text.Face
	captionFace text.Face

	bgSource   image.Image
	background *ebiten.Image

	textures   map[int]*ebiten.Image
	generation int

	now  func() time.Time
	last time.Time
}

// NewGame creates a game drawing controller's state. ctx ends the loop when cancelled.
func NewGame(ctx context.Context, controller *carousel.Controller, opts Options) *Game {
	faces := opts.Faces
	if faces.Title == nil || faces.Caption == nil {
		faces = fonts.Basic()
	}
	return &Game{
		ctx:         ctx,
		controller:  controller,
		logger:      opts.Logger,
		titleFace:   text.NewGoXFace(faces.Title),
		captionFace: text.NewGoXFace(faces.Caption),
		bgSource:    opts.Background,
		textures:    make(map[int]*ebiten.Image),
		generation:  controller.Generation(),
		now:         time.Now,
	}
}

// Run opens the window and blocks until Escape is pressed, the window closes or ctx ends.
func Run(ctx context.Context, controller *carousel.Controller, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(NewGame(ctx, controller, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update applies input and advances the animation by the wall time since the last frame.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || quitPressed() {
		return ebiten.Termination
	}

	for _, in := range pressedInputs() {
		logging.Debug(g.logger, "input", "key", in.String())
		g.controller.HandleInput(g.ctx, in)
	}

	now := g.now()
	dt := 1.0 / float64(ebiten.TPS())
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now
	g.controller.Update(g.ctx, dt)
	return nil
}

// Draw renders the background, every card and the highlighted card's labels.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	if gen := g.controller.Generation(); gen != g.generation {
		g.dropTextures()
		g.generation = gen
	}

	bounds := screen.Bounds()
	vp := carousel.Viewport{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}
	for _, cmd := range g.controller.Project(vp) {
		g.drawCard(screen, cmd)
	}

	g.drawHeader(screen)
}

// Layout keeps one logical pixel per window pixel so the carousel recentres on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	if g.bgSource == nil {
		screen.Fill(fillColor)
		return
	}
	if g.background == nil {
		g.background = ebiten.NewImageFromImage(g.bgSource)
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	bw, bh := g.background.Bounds().Dx(), g.background.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(bw), float64(sh)/float64(bh))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.background, op)
}

func (g *Game) drawCard(screen *ebiten.Image, cmd carousel.DrawCommand) {
	tex := g.texture(cmd)
	if tex != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(cmd.Scale, cmd.Scale)
		op.GeoM.Translate(cmd.X, cmd.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(tex, op)
	}

	for _, l := range cmd.Labels {
		face := g.titleFace
		op := &text.DrawOptions{}
		op.LayoutOptions.SecondaryAlign = text.AlignStart
		if l.Kind == carousel.LabelTitle {
			op.LayoutOptions.SecondaryAlign = text.AlignEnd
		} else {
			face = g.captionFace
		}
		op.GeoM.Translate(l.X, l.Y)
		op.ColorScale.ScaleWithColor(labelColor)
		text.Draw(screen, l.Text, face, op)
	}
}

// texture uploads an entry image once per generation, keyed by game id.
func (g *Game) texture(cmd carousel.DrawCommand) *ebiten.Image {
	if cmd.Entry == nil || cmd.Entry.Image == nil {
		return nil
	}
	id := cmd.Entry.Game.ID
	if tex, ok := g.textures[id]; ok {
		return tex
	}
	tex := ebiten.NewImageFromImage(cmd.Entry.Image)
	g.textures[id] = tex
	return tex
}

func (g *Game) dropTextures() {
	for id, tex := range g.textures {
		tex.Deallocate()
		delete(g.textures, id)
	}
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	c := g.controller
	line := c.Date().String()
	if sel, ok := c.Selected(); ok && c.Len() > 0 {
		line += fmt.Sprintf("   %d/%d", sel+1, c.Len())
	} else {
		line += "   no games"
	}
	if c.Loading() {
		line += "   loading..."
	}
	ebitenutil.DebugPrintAt(screen, line, 8, 8)
}
