package app

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-browser/internal/config"
	"github.com/preston-bernstein/mlb-browser/internal/metrics"
	"github.com/preston-bernstein/mlb-browser/internal/providers"
	"github.com/preston-bernstein/mlb-browser/internal/snapshots"
)

// providerFactory assembles the provider with shared wrappers (instrumentation + schedule snapshots).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	provider := providers.NewInstrumentedProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
	if !cfg.Cache.ScheduleEnabled {
		return provider
	}
	return snapshots.NewCachingProvider(
		provider,
		snapshots.NewFSStore(cfg.Cache.Dir),
		snapshots.NewWriter(cfg.Cache.Dir),
		providers.LocationOrUTC(cfg.Timezone),
		f.logger,
	)
}
