package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

// ErrImageNotFound is returned by StubProvider for refs without configured bytes.
var ErrImageNotFound = errors.New("stub: image not found")

// StubProvider is a test double for providers.DataProvider.
// Schedules are keyed by YYYY-MM-DD; Games is returned for any date missing from Schedules.
type StubProvider struct {
	Games     []domaingames.Game
	Schedules map[string][]domaingames.Game
	Err       error
	Images    map[string][]byte
	ImageErr  error
	Calls     atomic.Int32
	Notify    chan struct{}

	mu         sync.Mutex
	imageCalls map[string]int
}

// FetchSchedule returns configured games and error while tracking calls.
func (s *StubProvider) FetchSchedule(ctx context.Context, date timeutil.Date) ([]domaingames.Game, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	if games, ok := s.Schedules[date.String()]; ok {
		return games, nil
	}
	return s.Games, nil
}

// FetchImage returns the configured bytes for ref.
func (s *StubProvider) FetchImage(ctx context.Context, ref string) ([]byte, error) {
	_ = ctx
	s.mu.Lock()
	if s.imageCalls == nil {
		s.imageCalls = make(map[string]int)
	}
	s.imageCalls[ref]++
	s.mu.Unlock()

	if s.ImageErr != nil {
		return nil, s.ImageErr
	}
	data, ok := s.Images[ref]
	if !ok {
		return nil, ErrImageNotFound
	}
	return data, nil
}

// ImageCalls reports how many times ref was fetched.
func (s *StubProvider) ImageCalls(ref string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imageCalls[ref]
}
