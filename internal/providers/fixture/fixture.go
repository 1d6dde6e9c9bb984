package fixture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
	"github.com/preston-bernstein/mlb-browser/internal/providers"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

const (
	imageScheme = "fixture://"
	imageWidth  = 320
	imageHeight = 180
)

var clubs = []string{
	"Chicago Cubs", "Philadelphia Phillies", "New York Yankees", "Boston Red Sox",
	"Los Angeles Dodgers", "San Francisco Giants", "St. Louis Cardinals", "Atlanta Braves",
	"Houston Astros", "Seattle Mariners", "Toronto Blue Jays", "Milwaukee Brewers",
}

// Provider returns deterministic games for any calendar day, useful offline and in tests.
type Provider struct {
	// MinGames and MaxGames bound how many games a day carries.
	MinGames int
	MaxGames int
}

// New creates a fixture provider with 2..6 games per day.
func New() *Provider {
	return &Provider{MinGames: 2, MaxGames: 6}
}

// FetchSchedule returns the games generated for date.
func (p *Provider) FetchSchedule(ctx context.Context, date timeutil.Date) ([]domaingames.Game, error) {
	_ = ctx
	if !date.Valid() {
		return nil, fmt.Errorf("%w: %s", providers.ErrInvalidDate, date)
	}

	count := p.gamesFor(date)
	if count == 0 {
		return nil, providers.ErrNoGames
	}

	seed := date.Year*10000 + date.Month*100 + date.Day
	games := make([]domaingames.Game, 0, count)
	for i := 0; i < count; i++ {
		id := seed*10 + i
		home := clubs[(seed+2*i)%len(clubs)]
		away := clubs[(seed+2*i+1)%len(clubs)]
		games = append(games, domaingames.Game{
			ID:            id,
			HomeName:      home,
			AwayName:      away,
			RecapLabel:    fmt.Sprintf("%s top %s on %s", home, away, date),
			RecapImageRef: imageScheme + strconv.Itoa(id),
		})
	}
	return games, nil
}

// FetchImage renders a solid PNG whose colour is derived from the game id in ref.
func (p *Provider) FetchImage(ctx context.Context, ref string) ([]byte, error) {
	_ = ctx
	raw, ok := strings.CutPrefix(ref, imageScheme)
	if !ok {
		return nil, fmt.Errorf("fixture: unsupported image reference %q", ref)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("fixture: parse image reference %q: %w", ref, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))
	fill := colorFor(id)
	for y := 0; y < imageHeight; y++ {
		for x := 0; x < imageWidth; x++ {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("fixture: encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *Provider) gamesFor(date timeutil.Date) int {
	lo, hi := p.MinGames, p.MaxGames
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	return lo + date.Day%(hi-lo+1)
}

func colorFor(id int) color.RGBA {
	return color.RGBA{
		R: uint8(40 + (id*37)%160),
		G: uint8(40 + (id*59)%160),
		B: uint8(40 + (id*83)%160),
		A: 0xff,
	}
}
