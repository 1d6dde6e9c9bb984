package carousel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
	"github.com/preston-bernstein/mlb-browser/internal/menu"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

var (
	day0      = timeutil.Date{Year: 2018, Month: 6, Day: 10}
	errNoData = errors.New("no data")
)

// stubLoader serves entries per date. When gate is set, loads block until it is closed.
type stubLoader struct {
	mu       sync.Mutex
	byDate   map[string][]menu.Entry
	err      error
	gate     chan struct{}
	calls    []timeutil.Date
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func newStubLoader() *stubLoader {
	return &stubLoader{byDate: make(map[string][]menu.Entry)}
}

func (s *stubLoader) set(date timeutil.Date, entries []menu.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byDate[date.String()] = entries
}

func (s *stubLoader) block() chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = make(chan struct{})
	return s.gate
}

func (s *stubLoader) callDates() []timeutil.Date {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]timeutil.Date(nil), s.calls...)
}

func (s *stubLoader) LoadEntries(ctx context.Context, date timeutil.Date) ([]menu.Entry, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		seen := s.maxSeen.Load()
		if n <= seen || s.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	s.mu.Lock()
	s.calls = append(s.calls, date)
	gate := s.gate
	entries, ok := s.byDate[date.String()]
	err := s.err
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if !ok || len(entries) == 0 {
		return nil, errNoData
	}
	return entries, nil
}

func makeEntries(ids ...int) []menu.Entry {
	out := make([]menu.Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, menu.Entry{
			Game: domaingames.Game{
				ID:         id,
				HomeName:   "Home",
				AwayName:   "Away",
				RecapLabel: "Recap",
			},
			TitleWidth:   84,
			CaptionWidth: 35,
		})
	}
	return out
}

func loadedController(t *testing.T, loader *stubLoader, n int, opts ...Option) *Controller {
	t.Helper()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	loader.set(day0, makeEntries(ids...))
	c := New(loader, day0, opts...)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return c
}

func waitIdle(t *testing.T, c *Controller) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		c.Update(context.Background(), 0)
		if !c.Loading() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("reload did not finish")
		}
		time.Sleep(time.Millisecond)
	}
}

func ids(entries []menu.Entry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Game.ID)
	}
	return out
}

func assertIDs(t *testing.T, entries []menu.Entry, want ...int) {
	t.Helper()
	got := ids(entries)
	if len(got) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, got)
		}
	}
}

func assertSelected(t *testing.T, c *Controller, want int) {
	t.Helper()
	got, ok := c.Selected()
	if !ok || got != want {
		t.Fatalf("expected selection %d, got %d (set=%v)", want, got, ok)
	}
}
