package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.StatsAPI.BaseURL != defaultStatsBaseURL {
		t.Fatalf("expected default stats api base url %s, got %s", defaultStatsBaseURL, cfg.StatsAPI.BaseURL)
	}
	if cfg.StatsAPI.SportID != 1 {
		t.Fatalf("expected sport id 1, got %d", cfg.StatsAPI.SportID)
	}
	if cfg.StatsAPI.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultHTTPTimeout, cfg.StatsAPI.Timeout)
	}
	if cfg.Timezone != defaultTimezone {
		t.Fatalf("expected default timezone %s, got %s", defaultTimezone, cfg.Timezone)
	}
	if cfg.StartDate != "" {
		t.Fatalf("expected empty start date by default, got %s", cfg.StartDate)
	}
	if cfg.Cache.Dir != defaultCacheDir || !cfg.Cache.ScheduleEnabled {
		t.Fatalf("unexpected cache defaults %+v", cfg.Cache)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.Title != defaultWindowTitle {
		t.Fatalf("unexpected window defaults %+v", cfg.Window)
	}
	if cfg.ReloadMode != ReloadBackground {
		t.Fatalf("expected background reloads by default, got %s", cfg.ReloadMode)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled by default")
	}
	if cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != "mlb-browser" {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envProvider, "Fixture")
	t.Setenv(envStatsBaseURL, "http://example.com/api")
	t.Setenv(envStatsSportID, "11")
	t.Setenv(envHTTPTimeout, "3s")
	t.Setenv(envTimezone, "UTC")
	t.Setenv(envStartDate, "2018-06-10")
	t.Setenv(envCacheDir, "/tmp/mlb")
	t.Setenv(envScheduleCache, "false")
	t.Setenv(envBackgroundImage, "bg.png")
	t.Setenv(envWindowWidth, "1280")
	t.Setenv(envWindowHeight, "720")
	t.Setenv(envWindowTitle, "DSS")
	t.Setenv(envReloadMode, "BLOCKING")
	t.Setenv(envMetricsOn, "1")
	t.Setenv(envMetricsPort, "9191")

	cfg := Load()

	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider to be lower-cased, got %s", cfg.Provider)
	}
	if cfg.StatsAPI.BaseURL != "http://example.com/api" || cfg.StatsAPI.SportID != 11 {
		t.Fatalf("unexpected stats api overrides %+v", cfg.StatsAPI)
	}
	if cfg.StatsAPI.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.StatsAPI.Timeout)
	}
	if cfg.Timezone != "UTC" || cfg.StartDate != "2018-06-10" {
		t.Fatalf("unexpected timezone/start date %s %s", cfg.Timezone, cfg.StartDate)
	}
	if cfg.Cache.Dir != "/tmp/mlb" || cfg.Cache.ScheduleEnabled {
		t.Fatalf("unexpected cache overrides %+v", cfg.Cache)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 || cfg.Window.Title != "DSS" || cfg.Window.BackgroundImage != "bg.png" {
		t.Fatalf("unexpected window overrides %+v", cfg.Window)
	}
	if cfg.ReloadMode != ReloadBlocking {
		t.Fatalf("expected blocking reload mode, got %s", cfg.ReloadMode)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9191" {
		t.Fatalf("unexpected metrics overrides %+v", cfg.Metrics)
	}
}

func TestLoadUnknownReloadModeFallsBack(t *testing.T) {
	t.Setenv(envReloadMode, "threads")

	if cfg := Load(); cfg.ReloadMode != ReloadBackground {
		t.Fatalf("expected background fallback, got %s", cfg.ReloadMode)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envHTTPTimeout, "not-a-duration")

	if cfg := Load(); cfg.StatsAPI.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.StatsAPI.Timeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envHTTPTimeout, "0s")

	if cfg := Load(); cfg.StatsAPI.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.StatsAPI.Timeout)
	}
}
