package menu

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
	"github.com/preston-bernstein/mlb-browser/internal/fonts"
	"github.com/preston-bernstein/mlb-browser/internal/logging"
)

// ImageResolver returns the raw bytes of a game's recap image.
type ImageResolver interface {
	ResolveImage(ctx context.Context, game domaingames.Game) ([]byte, error)
}

// Builder turns games into menu entries.
type Builder struct {
	resolver ImageResolver
	faces    fonts.Faces
	logger   *slog.Logger
}

// NewBuilder constructs a builder that measures labels with faces.
func NewBuilder(resolver ImageResolver, faces fonts.Faces, logger *slog.Logger) *Builder {
	return &Builder{
		resolver: resolver,
		faces:    faces,
		logger:   logger,
	}
}

// NewEntry resolves, decodes and resizes the recap image for game.
// Any failure is reported as ErrImageUnresolvable.
func (b *Builder) NewEntry(ctx context.Context, game domaingames.Game) (Entry, error) {
	if b.resolver == nil {
		return Entry{}, fmt.Errorf("game %d: %w: no resolver", game.ID, ErrImageUnresolvable)
	}
	data, err := b.resolver.ResolveImage(ctx, game)
	if err != nil {
		return Entry{}, fmt.Errorf("game %d: %w: %w", game.ID, ErrImageUnresolvable, err)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Entry{}, fmt.Errorf("game %d: %w: decode: %w", game.ID, ErrImageUnresolvable, err)
	}

	return Entry{
		Game:         game,
		Image:        resize(src, DisplayWidth, DisplayHeight),
		TitleWidth:   fonts.Measure(b.faces.Title, game.Label()),
		CaptionWidth: fonts.Measure(b.faces.Caption, game.RecapLabel),
	}, nil
}

// Build returns an entry per game in order, skipping games whose image cannot be resolved.
func (b *Builder) Build(ctx context.Context, games []domaingames.Game) []Entry {
	entries := make([]Entry, 0, len(games))
	for _, game := range games {
		if ctx.Err() != nil {
			break
		}
		entry, err := b.NewEntry(ctx, game)
		if err != nil {
			logging.Warn(b.logger, "skipping menu entry",
				logging.FieldGameID, game.ID,
				"error", err,
			)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func resize(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
