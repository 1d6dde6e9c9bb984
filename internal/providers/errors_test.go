package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{Provider: "statsapi", StatusCode: 502, Body: "boom"}
	if got := err.Error(); got != "statsapi: unexpected status 502: boom" {
		t.Fatalf("unexpected error string %q", got)
	}

	bare := &StatusError{StatusCode: 404}
	if got := bare.Error(); got != "provider: unexpected status 404" {
		t.Fatalf("unexpected fallback string %q", got)
	}
}

func TestAsStatusErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("fetch schedule: %w", &StatusError{StatusCode: 500})
	statusErr, ok := AsStatusError(wrapped)
	if !ok || statusErr.StatusCode != 500 {
		t.Fatalf("expected to unwrap status error, got %v", statusErr)
	}
	if _, ok := AsStatusError(errors.New("plain")); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	if errors.Is(ErrNoGames, ErrProviderUnavailable) || errors.Is(ErrInvalidDate, ErrNoGames) {
		t.Fatalf("expected distinct sentinels")
	}
}
