package app

import (
	"log/slog"

	"github.com/preston-bernstein/mlb-browser/internal/config"
	"github.com/preston-bernstein/mlb-browser/internal/providers"
	"github.com/preston-bernstein/mlb-browser/internal/providers/fixture"
	"github.com/preston-bernstein/mlb-browser/internal/providers/statsapi"
)

const (
	providerStatsAPI = "statsapi"
	providerFixture  = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case providerStatsAPI, "":
		return statsapi.NewClient(statsapi.Config{
			BaseURL: cfg.StatsAPI.BaseURL,
			SportID: cfg.StatsAPI.SportID,
			Timeout: cfg.StatsAPI.Timeout,
		})
	case providerFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
