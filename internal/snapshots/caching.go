package snapshots

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
	"github.com/preston-bernstein/mlb-browser/internal/logging"
	"github.com/preston-bernstein/mlb-browser/internal/providers"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

// CachingProvider serves past days from snapshots and writes fresh fetches back.
// Today and later are always fetched, since recaps are still being published for them.
type CachingProvider struct {
	inner  providers.DataProvider
	store  Store
	writer *Writer
	logger *slog.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewCachingProvider wraps inner with a read-through snapshot cache.
// loc decides what "today" is; nil means UTC.
func NewCachingProvider(inner providers.DataProvider, store Store, writer *Writer, loc *time.Location, logger *slog.Logger) *CachingProvider {
	if loc == nil {
		loc = time.UTC
	}
	return &CachingProvider{
		inner:  inner,
		store:  store,
		writer: writer,
		logger: logger,
		loc:    loc,
		now:    time.Now,
	}
}

// FetchSchedule returns the snapshot for a past date when present, otherwise fetches and stores it.
func (p *CachingProvider) FetchSchedule(ctx context.Context, date timeutil.Date) ([]domaingames.Game, error) {
	cacheable := p.cacheable(date)
	if cacheable && p.store != nil {
		if snap, err := p.store.LoadSchedule(date.String()); err == nil && len(snap.Games) > 0 {
			logging.Debug(p.logger, "schedule snapshot hit",
				logging.FieldDate, date.String(),
				logging.FieldCount, len(snap.Games),
			)
			return snap.Games, nil
		}
	}

	games, err := p.inner.FetchSchedule(ctx, date)
	if err != nil {
		return nil, err
	}

	if cacheable && p.writer != nil && len(games) > 0 {
		if werr := p.writer.WriteSchedule(domaingames.NewSchedule(date.String(), games)); werr != nil {
			logging.Warn(p.logger, "schedule snapshot write failed",
				logging.FieldDate, date.String(),
				"error", werr,
			)
		}
	}
	return games, nil
}

// FetchImage passes through to the wrapped provider.
func (p *CachingProvider) FetchImage(ctx context.Context, ref string) ([]byte, error) {
	return p.inner.FetchImage(ctx, ref)
}

func (p *CachingProvider) cacheable(date timeutil.Date) bool {
	if !date.Valid() {
		return false
	}
	return date.String() < timeutil.Today(p.now, p.loc).String()
}
