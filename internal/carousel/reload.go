package carousel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/mlb-browser/internal/logging"
	"github.com/preston-bernstein/mlb-browser/internal/menu"
	"github.com/preston-bernstein/mlb-browser/internal/metrics"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

// ErrNoLoader reports a controller constructed without an entry loader.
var ErrNoLoader = errors.New("carousel: no entry loader")

type reloadResult struct {
	id      string
	date    timeutil.Date
	entries []menu.Entry
	err     error
	started time.Time
}

// Load populates the carousel for its current date, blocking until entries are built.
// On failure the state is left unchanged and the error is returned.
func (c *Controller) Load(ctx context.Context) error {
	res := c.load(ctx, uuid.NewString(), c.date)
	if res.err == nil && len(res.entries) == 0 {
		res.err = menu.ErrNoEntries
	}
	c.finish(ctx, res)
	if res.err != nil {
		return fmt.Errorf("load %s: %w", res.date, res.err)
	}
	return nil
}

// AdvanceDay moves the date by delta days without calendar rollover and reloads.
// The date always changes; the entries only change when the new day has something to show.
func (c *Controller) AdvanceDay(ctx context.Context, delta int) {
	c.date = c.date.AddDays(delta)
	logging.Debug(c.logger, "advancing day",
		logging.FieldDate, c.date.String(),
		"delta", delta,
	)

	if c.background {
		c.startReload(ctx)
		return
	}
	c.finish(ctx, c.load(ctx, uuid.NewString(), c.date))
}

func (c *Controller) load(ctx context.Context, id string, date timeutil.Date) reloadResult {
	res := reloadResult{id: id, date: date, started: time.Now()}
	if c.loader == nil {
		res.err = ErrNoLoader
		return res
	}
	res.entries, res.err = c.loader.LoadEntries(ctx, date)
	return res
}

// startReload launches a background load for the current date unless one is already running.
// A load in flight for an older date is restarted from drain once it returns.
func (c *Controller) startReload(ctx context.Context) {
	if c.loading {
		return
	}
	c.loading = true
	id, date := uuid.NewString(), c.date
	logging.Debug(c.logger, "reload started",
		logging.FieldReloadID, id,
		logging.FieldDate, date.String(),
	)
	go func() {
		c.results <- c.load(ctx, id, date)
	}()
}

func (c *Controller) drain(ctx context.Context) {
	select {
	case res := <-c.results:
		c.loading = false
		c.finish(ctx, res)
	default:
	}
}

func (c *Controller) finish(ctx context.Context, res reloadResult) {
	elapsed := time.Since(res.started)

	if res.date != c.date {
		c.metrics.RecordReload(metrics.OutcomeStale, elapsed)
		logging.Debug(c.logger, "discarding stale reload",
			logging.FieldReloadID, res.id,
			logging.FieldDate, res.date.String(),
			"current_date", c.date.String(),
		)
		c.startReload(ctx)
		return
	}

	if res.err != nil || len(res.entries) == 0 {
		c.metrics.RecordReload(metrics.OutcomeUnavailable, elapsed)
		logging.Warn(c.logger, "schedule unavailable, keeping current entries",
			logging.FieldReloadID, res.id,
			logging.FieldDate, res.date.String(),
			logging.FieldCount, len(c.entries),
			"error", res.err,
		)
		return
	}

	c.apply(res.entries)
	c.metrics.RecordReload(metrics.OutcomeApplied, elapsed)
	logging.Info(c.logger, "carousel reloaded",
		logging.FieldReloadID, res.id,
		logging.FieldDate, res.date.String(),
		logging.FieldCount, len(res.entries),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
}
