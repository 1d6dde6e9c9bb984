package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
	"github.com/preston-bernstein/mlb-browser/internal/logging"
	"github.com/preston-bernstein/mlb-browser/internal/metrics"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

// instrumentedProvider records metrics and logs for every upstream call.
type instrumentedProvider struct {
	inner   DataProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
}

// NewInstrumentedProvider wraps inner so each call is timed, counted and logged under name.
// Empty schedules are normalized to ErrNoGames.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) DataProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
	}
}

func (p *instrumentedProvider) FetchSchedule(ctx context.Context, date timeutil.Date) ([]domaingames.Game, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable")
		return nil, ErrProviderUnavailable
	}

	start := time.Now()
	games, err := p.inner.FetchSchedule(ctx, date)
	if err == nil && len(games) == 0 {
		err = ErrNoGames
	}
	p.metrics.RecordProviderAttempt(p.name, time.Since(start), err)

	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "schedule fetch failed",
			logging.FieldDate, date.String(),
			"error", err,
			logging.Since(start),
		)
		return nil, err
	}

	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "schedule fetched",
		logging.FieldDate, date.String(),
		logging.FieldCount, len(games),
		logging.Since(start),
	)
	return games, nil
}

func (p *instrumentedProvider) FetchImage(ctx context.Context, ref string) ([]byte, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}

	start := time.Now()
	data, err := p.inner.FetchImage(ctx, ref)
	p.metrics.RecordProviderAttempt(p.name+"_images", time.Since(start), err)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "image fetch failed", logging.FieldPath, ref, "error", err)
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "image fetched", logging.FieldPath, ref, logging.Since(start))
	return data, nil
}
