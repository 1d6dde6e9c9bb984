package app

import "time"

const (
	metricsReadTimeout  = 5 * time.Second
	metricsWriteTimeout = 10 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 5 * time.Second
