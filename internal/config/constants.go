package config

import "time"

const (
	envProvider        = "PROVIDER"
	envStatsBaseURL    = "STATSAPI_BASE_URL"
	envStatsSportID    = "STATSAPI_SPORT_ID"
	envHTTPTimeout     = "HTTP_TIMEOUT"
	envTimezone        = "TIMEZONE"
	envStartDate       = "START_DATE"
	envCacheDir        = "CACHE_DIR"
	envScheduleCache   = "SCHEDULE_CACHE_ENABLED"
	envBackgroundImage = "BACKGROUND_IMAGE"
	envWindowWidth     = "WINDOW_WIDTH"
	envWindowHeight    = "WINDOW_HEIGHT"
	envWindowTitle     = "WINDOW_TITLE"
	envReloadMode      = "RELOAD_MODE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider        = "statsapi"
	defaultStatsBaseURL    = "https://statsapi.mlb.com/api/v1"
	defaultStatsSportID    = 1
	defaultHTTPTimeout     = 10 * Duration(time.Second)
	defaultTimezone        = "America/New_York"
	defaultCacheDir        = "cache"
	defaultScheduleCache   = true
	defaultBackgroundImage = "assets/background.jpg"
	defaultWindowWidth     = 800
	defaultWindowHeight    = 600
	defaultWindowTitle     = "MLB Browser"
	defaultMetricsPort     = "9090"
	// A desktop session rarely has a scraper attached, so telemetry is opt-in.
	defaultMetricsOn = false

	// ReloadBackground builds entries off the frame loop; ReloadBlocking fetches inline.
	ReloadBackground = "background"
	ReloadBlocking   = "blocking"
)
