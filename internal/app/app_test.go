package app

import (
	"context"
	"errors"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/preston-bernstein/mlb-browser/internal/carousel"
	"github.com/preston-bernstein/mlb-browser/internal/config"
	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
	"github.com/preston-bernstein/mlb-browser/internal/fonts"
	"github.com/preston-bernstein/mlb-browser/internal/metrics"
	"github.com/preston-bernstein/mlb-browser/internal/teststubs"
	"github.com/preston-bernstein/mlb-browser/internal/testutil"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	shutdownErr   error
	listened      chan struct{}
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	if s.listened != nil {
		close(s.listened)
	}
	return http.ErrServerClosed
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string          { return s.addr }
func (s *stubHTTPServer) Handler() http.Handler { return s.handler }

func stubWithImages(games []domaingames.Game) *teststubs.StubProvider {
	images := make(map[string][]byte, len(games))
	for _, g := range games {
		images[g.RecapImageRef] = testutil.PNGBytes(20, 12, color.RGBA{G: 180, A: 255})
	}
	return &teststubs.StubProvider{Games: games, Images: images}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Provider:   "fixture",
		Timezone:   "UTC",
		StartDate:  "2018-06-10",
		Cache:      config.CacheConfig{Dir: t.TempDir()},
		ReloadMode: config.ReloadBlocking,
	}
}

func TestRunLoadsBeforeHandingOverAndShutsDown(t *testing.T) {
	cfg := testConfig(t)
	a := newWithProvider(cfg, nil, stubWithImages(testutil.SampleGames(3)), nil, time.Now)
	metricsSrv := &stubHTTPServer{addr: ":0", listened: make(chan struct{})}
	stopped := false
	a.metricsServer = metricsSrv
	a.metricsStop = func(context.Context) error { stopped = true; return nil }

	var seen int
	err := a.Run(context.Background(), func(ctx context.Context, a *App) error {
		seen = a.Controller().Len()
		return nil
	})
	if err != nil {
		t.Fatalf("expected clean run, got %v", err)
	}
	if seen != 3 {
		t.Fatalf("expected runner to see 3 loaded entries, got %d", seen)
	}

	select {
	case <-metricsSrv.listened:
	case <-time.After(time.Second):
		t.Fatalf("metrics server was not started")
	}
	if metricsSrv.shutdownCalls != 1 || !stopped {
		t.Fatalf("expected metrics shutdown, calls=%d stopped=%v", metricsSrv.shutdownCalls, stopped)
	}
}

func TestRunContinuesAfterFailedInitialLoad(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	a := newWithProvider(testConfig(t), logger, &teststubs.StubProvider{Err: errors.New("offline")}, nil, time.Now)

	ran := false
	if err := a.Run(context.Background(), func(context.Context, *App) error {
		ran = true
		return nil
	}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !ran {
		t.Fatalf("expected runner to be called")
	}
	if !strings.Contains(buf.String(), "initial schedule load failed") {
		t.Fatalf("expected warning, got %s", buf.String())
	}
}

func TestRunReturnsRunnerError(t *testing.T) {
	a := newWithProvider(testConfig(t), nil, stubWithImages(testutil.SampleGames(1)), nil, time.Now)
	a.metricsServer = &stubHTTPServer{shutdownErr: errors.New("stuck")}
	boom := errors.New("boom")

	if err := a.Run(context.Background(), func(context.Context, *App) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected runner error, got %v", err)
	}
}

func TestNewWithFixtureProviderEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.ScheduleEnabled = true
	a := New(cfg, nil)

	err := a.Run(context.Background(), func(ctx context.Context, a *App) error {
		c := a.Controller()
		if c.Len() == 0 {
			t.Fatalf("expected fixture entries")
		}
		c.HandleInput(ctx, carousel.InputUp)
		if c.Date() != (timeutil.Date{Year: 2018, Month: 6, Day: 11}) {
			t.Fatalf("expected date to advance, got %s", c.Date())
		}
		if len(c.Project(carousel.Viewport{Width: 800, Height: 600})) != c.Len() {
			t.Fatalf("expected a draw command per entry")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.Cache.Dir, "games", "2018-06-10.json")); err != nil {
		t.Fatalf("expected schedule snapshot for past date: %v", err)
	}
	images, err := os.ReadDir(filepath.Join(cfg.Cache.Dir, "images"))
	if err != nil || len(images) == 0 {
		t.Fatalf("expected cached images, got %d (%v)", len(images), err)
	}
	if a.Metrics().Reloads(metrics.OutcomeApplied) != 2 {
		t.Fatalf("expected two applied reloads, got %d", a.Metrics().Reloads(metrics.OutcomeApplied))
	}
	if a.Metrics().ProviderCalls("fixture") != 2 {
		t.Fatalf("expected provider calls recorded under fixture, got %d", a.Metrics().ProviderCalls("fixture"))
	}
}

func TestNewFallsBackToBasicFaces(t *testing.T) {
	orig := loadFaces
	defer func() { loadFaces = orig }()
	loadFaces = func() (fonts.Faces, error) { return fonts.Faces{}, errors.New("no font") }

	a := newWithProvider(testConfig(t), nil, &teststubs.StubProvider{}, nil, time.Now)
	if a.Faces().Title == nil || a.Faces().Caption == nil {
		t.Fatalf("expected basic faces after load failure")
	}
}

func TestAccessors(t *testing.T) {
	cfg := testConfig(t)
	cfg.Window = config.WindowConfig{Width: 640, Height: 360, Title: "t"}
	logger, _ := testutil.NewBufferLogger()
	a := newWithProvider(cfg, logger, &teststubs.StubProvider{}, nil, time.Now)

	if a.Window() != cfg.Window || a.Logger() != logger || a.Metrics() == nil {
		t.Fatalf("unexpected accessors")
	}
	if a.Background() != nil {
		t.Fatalf("expected no background without a path")
	}
}

func TestStartDate(t *testing.T) {
	now := testutil.NowAt(time.Date(2018, 6, 11, 2, 0, 0, 0, time.UTC))

	if d := startDate(config.Config{StartDate: "2017-04-02"}, now, nil); d.String() != "2017-04-02" {
		t.Fatalf("expected configured start date, got %s", d)
	}
	if d := startDate(config.Config{Timezone: "UTC"}, now, nil); d.String() != "2018-06-11" {
		t.Fatalf("expected today in UTC, got %s", d)
	}
	if d := startDate(config.Config{Timezone: "America/New_York"}, now, nil); d.String() != "2018-06-10" {
		t.Fatalf("expected today in New York, got %s", d)
	}

	logger, buf := testutil.NewBufferLogger()
	if d := startDate(config.Config{StartDate: "junk", Timezone: "UTC"}, now, logger); d.String() != "2018-06-11" {
		t.Fatalf("expected fallback to today, got %s", d)
	}
	if !strings.Contains(buf.String(), "invalid start date") {
		t.Fatalf("expected warning, got %s", buf.String())
	}
}

func TestBuildMetricsHandlesSetupFailure(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil)
	if rec == nil || srv != nil || stop != nil {
		t.Fatalf("expected fallback recorder without server")
	}
}

func TestBuildMetricsDisabledSkipsServer(t *testing.T) {
	rec, srv, stop := buildMetrics(config.Config{}, nil)
	if rec == nil || srv != nil {
		t.Fatalf("expected recorder without server")
	}
	if stop == nil || stop(context.Background()) != nil {
		t.Fatalf("expected no-op shutdown")
	}
}

func TestBuildMetricsMountsHandler(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
		return metrics.NewRecorder(), h, func(context.Context) error { return nil }, nil
	}

	_, srv, _ := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true, Port: "9191"}}, nil)
	if srv == nil || srv.Addr() != ":9191" {
		t.Fatalf("expected metrics server on :9191")
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("expected /metrics to be served, got %d %q", rec.Code, rec.Body.String())
	}
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 outside /metrics, got %d", rec.Code)
	}
}
