package config

import "strings"

// Config holds runtime configuration for the browser.
type Config struct {
	Provider   string
	StatsAPI   StatsAPIConfig
	Timezone   string
	StartDate  string
	Cache      CacheConfig
	Window     WindowConfig
	ReloadMode string
	Metrics    MetricsConfig
}

// CacheConfig controls the flat on-disk cache.
type CacheConfig struct {
	Dir             string
	ScheduleEnabled bool
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Width           int
	Height          int
	Title           string
	BackgroundImage string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:   strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		StatsAPI:   loadStatsAPI(),
		Timezone:   envOrDefault(envTimezone, defaultTimezone),
		StartDate:  envOrDefault(envStartDate, ""),
		Cache:      loadCache(),
		Window:     loadWindow(),
		ReloadMode: reloadModeOrDefault(envOrDefault(envReloadMode, ReloadBackground)),
		Metrics:    loadMetrics(),
	}
}

func loadCache() CacheConfig {
	return CacheConfig{
		Dir:             envOrDefault(envCacheDir, defaultCacheDir),
		ScheduleEnabled: boolEnvOrDefault(envScheduleCache, defaultScheduleCache),
	}
}

func loadWindow() WindowConfig {
	return WindowConfig{
		Width:           intEnvOrDefault(envWindowWidth, defaultWindowWidth),
		Height:          intEnvOrDefault(envWindowHeight, defaultWindowHeight),
		Title:           envOrDefault(envWindowTitle, defaultWindowTitle),
		BackgroundImage: envOrDefault(envBackgroundImage, defaultBackgroundImage),
	}
}

func reloadModeOrDefault(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ReloadBlocking:
		return ReloadBlocking
	default:
		return ReloadBackground
	}
}
