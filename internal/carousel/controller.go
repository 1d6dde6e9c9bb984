package carousel

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/mlb-browser/internal/menu"
	"github.com/preston-bernstein/mlb-browser/internal/metrics"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

const (
	// AnimationRate is how much transition progress one second of frame time adds.
	AnimationRate = 10.0
	// progressEpsilon snaps accumulated float error to a finished transition.
	progressEpsilon = 1e-9
)

// EntryLoader builds the menu entries for one day.
type EntryLoader interface {
	LoadEntries(ctx context.Context, date timeutil.Date) ([]menu.Entry, error)
}

// Controller owns the carousel state: the entries for one date, the selection and the
// transition between the previously and currently selected entry.
//
// All methods must be called from the host's frame goroutine. Background reloads only
// hand their result back over a channel that Update drains.
type Controller struct {
	loader     EntryLoader
	logger     *slog.Logger
	metrics    *metrics.Recorder
	background bool

	entries      []menu.Entry
	date         timeutil.Date
	selected     int
	hasSelection bool
	previous     int
	progress     float64
	generation   int

	loading bool
	results chan reloadResult
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for reload events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithMetrics sets the recorder for reload outcomes.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(c *Controller) { c.metrics = recorder }
}

// WithBackgroundReloads makes AdvanceDay load off the frame goroutine.
func WithBackgroundReloads(enabled bool) Option {
	return func(c *Controller) { c.background = enabled }
}

// New creates an empty controller positioned at date. Call Load to populate it.
func New(loader EntryLoader, date timeutil.Date, opts ...Option) *Controller {
	c := &Controller{
		loader:   loader,
		date:     date,
		progress: 1,
		results:  make(chan reloadResult, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Selected returns the selected index and whether a selection exists.
func (c *Controller) Selected() (int, bool) {
	return c.selected, c.hasSelection
}

// Previous returns the index the current transition started from.
func (c *Controller) Previous() int {
	return c.previous
}

// Progress returns the transition progress in [0, 1].
func (c *Controller) Progress() float64 {
	return c.progress
}

// Date returns the date the carousel is showing or loading.
func (c *Controller) Date() timeutil.Date {
	return c.date
}

// Entries returns the current entries. Callers must not modify the slice.
func (c *Controller) Entries() []menu.Entry {
	return c.entries
}

// Len returns the number of entries.
func (c *Controller) Len() int {
	return len(c.entries)
}

// Loading reports whether a background reload is in flight.
func (c *Controller) Loading() bool {
	return c.loading
}

// Generation increases every time a reload replaces the entries.
func (c *Controller) Generation() int {
	return c.generation
}

// SelectNext moves the selection one entry right, wrapping to the first.
func (c *Controller) SelectNext() {
	n := len(c.entries)
	if n == 0 {
		return
	}
	cur := c.current()
	c.previous = cur
	c.selected = (cur + 1) % n
	c.hasSelection = true
	c.progress = 0
}

// SelectPrevious moves the selection one entry left, wrapping to the last.
func (c *Controller) SelectPrevious() {
	n := len(c.entries)
	if n == 0 {
		return
	}
	cur := c.current()
	c.previous = cur
	c.selected = (cur + n - 1) % n
	c.hasSelection = true
	c.progress = 0
}

// Tick advances the transition by dt seconds. Non-positive dt is ignored.
func (c *Controller) Tick(dt float64) {
	if dt <= 0 || c.progress >= 1 {
		return
	}
	c.progress += dt * AnimationRate
	if c.progress >= 1-progressEpsilon {
		c.progress = 1
	}
}

// Update is the per-frame entry point: it applies a finished background reload, then ticks.
func (c *Controller) Update(ctx context.Context, dt float64) {
	c.drain(ctx)
	c.Tick(dt)
}

// current is the selected index, with no selection treated as 0.
func (c *Controller) current() int {
	if !c.hasSelection {
		return 0
	}
	return c.selected
}

// apply replaces the entries, keeping the selection where it fits and settling the animation.
func (c *Controller) apply(entries []menu.Entry) {
	c.entries = entries
	c.generation++

	switch {
	case len(entries) == 0:
		c.selected, c.hasSelection = 0, false
	case !c.hasSelection:
		c.selected, c.hasSelection = 0, true
	case c.selected >= len(entries):
		c.selected = len(entries) - 1
	}
	c.previous = c.selected
	c.progress = 1
}
