package providers

import (
	"context"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

// GameProvider fetches one day's schedule and normalizes it into domain games.
// An empty result is reported as ErrNoGames so callers can treat "nothing to show" uniformly.
type GameProvider interface {
	FetchSchedule(ctx context.Context, date timeutil.Date) ([]domaingames.Game, error)
}

// ImageFetcher downloads the raw bytes behind a recap image reference.
type ImageFetcher interface {
	FetchImage(ctx context.Context, ref string) ([]byte, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	GameProvider
	ImageFetcher
}
