package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrNoGames reports a schedule with no games for the requested day.
	ErrNoGames = errors.New("no games scheduled")
	// ErrProviderUnavailable reports a provider that was never configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrInvalidDate reports a date that does not name a calendar day.
	ErrInvalidDate = errors.New("invalid schedule date")
)

// StatusError captures non-200 responses from upstream providers.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	provider := e.Provider
	if provider == "" {
		provider = "provider"
	}
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", provider, e.StatusCode, e.Body)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
