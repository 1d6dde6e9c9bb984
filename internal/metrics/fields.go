package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrSource   = "source"
	AttrOutcome  = "outcome"
)

// Image lookup sources.
const (
	SourceCache = "cache"
	SourceFetch = "fetch"
	SourceError = "error"
)

// Reload outcomes.
const (
	OutcomeApplied     = "applied"
	OutcomeUnavailable = "unavailable"
	OutcomeStale       = "stale"
)
