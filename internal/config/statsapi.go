package config

// StatsAPIConfig controls how we talk to the MLB stats API.
type StatsAPIConfig struct {
	BaseURL string
	SportID int
	Timeout Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL: envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		SportID: intEnvOrDefault(envStatsSportID, defaultStatsSportID),
		Timeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
	}
}
