package menu

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/mlb-browser/internal/logging"
	"github.com/preston-bernstein/mlb-browser/internal/providers"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

// Loader fetches a day's games and builds their entries.
type Loader struct {
	provider providers.GameProvider
	builder  *Builder
	logger   *slog.Logger
}

// NewLoader constructs a loader.
func NewLoader(provider providers.GameProvider, builder *Builder, logger *slog.Logger) *Loader {
	return &Loader{
		provider: provider,
		builder:  builder,
		logger:   logger,
	}
}

// LoadEntries returns the entries for date. An empty schedule is ErrNoGames and a schedule
// where every image failed is ErrNoEntries; callers treat both as "nothing to show".
func (l *Loader) LoadEntries(ctx context.Context, date timeutil.Date) ([]Entry, error) {
	if l.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	start := time.Now()
	games, err := l.provider.FetchSchedule(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule %s: %w", date, err)
	}
	if len(games) == 0 {
		return nil, providers.ErrNoGames
	}

	entries := l.builder.Build(ctx, games)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w: %d games, all images unresolvable", date, ErrNoEntries, len(games))
	}

	logging.Debug(l.logger, "menu entries built",
		logging.FieldDate, date.String(),
		logging.FieldCount, len(entries),
		"skipped", len(games)-len(entries),
		logging.Since(start),
	)
	return entries, nil
}
