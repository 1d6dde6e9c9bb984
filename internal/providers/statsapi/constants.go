package statsapi

import "time"

const (
	providerName       = "statsapi"
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultSportID     = 1
	defaultHTTPTimeout = 10 * time.Second
	scheduleHydrate    = "game(content(editorial(recap))),decisions"
	// Recap photos larger than this are refused rather than buffered.
	maxImageBytes = 8 << 20
)

// preferredCuts lists photo cuts closest to the 16:9 card size, best first.
var preferredCuts = []string{"320x180", "270x154", "480x270", "640x360"}
