package app

import (
	"context"
	"image"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/mlb-browser/internal/carousel"
	"github.com/preston-bernstein/mlb-browser/internal/config"
	"github.com/preston-bernstein/mlb-browser/internal/fonts"
	"github.com/preston-bernstein/mlb-browser/internal/imagecache"
	"github.com/preston-bernstein/mlb-browser/internal/logging"
	"github.com/preston-bernstein/mlb-browser/internal/menu"
	"github.com/preston-bernstein/mlb-browser/internal/metrics"
	"github.com/preston-bernstein/mlb-browser/internal/providers"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

var (
	metricsSetup = metrics.Setup
	loadFaces    = fonts.Load
)

// Runner drives the window loop until the user quits or ctx is cancelled.
type Runner func(ctx context.Context, a *App) error

// App wires configuration, data sources and the carousel controller together.
type App struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	provider      providers.DataProvider
	images        *imagecache.Cache
	controller    *carousel.Controller
	faces         fonts.Faces
	background    image.Image
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs an app with the configured provider.
func New(cfg config.Config, logger *slog.Logger) *App {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)
	provider := newProviderFactory(logger, recorder).build(cfg)
	a := newWithProvider(cfg, logger, provider, recorder, time.Now)
	a.metricsServer = metricsSrv
	a.metricsStop = metricsShutdown
	return a
}

func newWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder, now func() time.Time) *App {
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}
	faces, err := loadFaces()
	if err != nil {
		logging.Warn(logger, "font load failed, using basic face", "error", err)
		faces = fonts.Basic()
	}

	images := imagecache.New(cfg.Cache.Dir, provider, logger, recorder)
	loader := menu.NewLoader(provider, menu.NewBuilder(images, faces, logger), logger)
	controller := carousel.New(loader, startDate(cfg, now, logger),
		carousel.WithLogger(logger),
		carousel.WithMetrics(recorder),
		carousel.WithBackgroundReloads(cfg.ReloadMode != config.ReloadBlocking),
	)

	return &App{
		cfg:        cfg,
		logger:     logger,
		metrics:    recorder,
		provider:   provider,
		images:     images,
		controller: controller,
		faces:      faces,
		background: loadBackground(cfg.Window.BackgroundImage, logger),
	}
}

// startDate honours a configured START_DATE and otherwise uses today in the configured timezone.
func startDate(cfg config.Config, now func() time.Time, logger *slog.Logger) timeutil.Date {
	if cfg.StartDate != "" {
		d, err := timeutil.ParseDay(cfg.StartDate)
		if err == nil {
			return d
		}
		logging.Warn(logger, "invalid start date, using today", logging.FieldDate, cfg.StartDate, "error", err)
	}
	return timeutil.Today(now, providers.LocationOrUTC(cfg.Timezone))
}

// Controller returns the carousel controller driven by the window loop.
func (a *App) Controller() *carousel.Controller { return a.controller }

// Faces returns the label faces entries were measured with.
func (a *App) Faces() fonts.Faces { return a.faces }

// Background returns the decoded background image, or nil for a solid fill.
func (a *App) Background() image.Image { return a.background }

// Window returns the window settings.
func (a *App) Window() config.WindowConfig { return a.cfg.Window }

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Metrics returns the shared recorder.
func (a *App) Metrics() *metrics.Recorder { return a.metrics }

// Run loads the first day, hands control to run, and shuts down once it returns.
// A failed first load is logged; the window still opens so the user can move to another day.
func (a *App) Run(ctx context.Context, run Runner) error {
	a.startMetrics()

	start := time.Now()
	if err := a.controller.Load(ctx); err != nil {
		logging.Warn(a.logger, "initial schedule load failed, starting empty",
			logging.FieldDate, a.controller.Date().String(),
			"error", err,
		)
	} else {
		logging.Info(a.logger, "initial schedule loaded",
			logging.FieldDate, a.controller.Date().String(),
			logging.FieldCount, a.controller.Len(),
			logging.Since(start),
		)
	}

	err := run(ctx, a)
	if err != nil {
		logging.Error(a.logger, "window loop exited with error", err)
	}
	a.gracefulShutdown()
	return err
}

func (a *App) startMetrics() {
	if a.metricsServer == nil {
		return
	}
	logging.Info(a.logger, "metrics server starting", slog.String("addr", a.metricsServer.Addr()))
	launchServer("metrics", a.metricsServer, a.logger)
}

func (a *App) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.metricsStop != nil {
		if err := a.metricsStop(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics shutdown failed", "error", err)
		}
	}
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics server shutdown failed", "error", err)
		}
	}
	logging.Info(a.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:         ":" + recCfg.Port,
				Handler:      mux,
				ReadTimeout:  metricsReadTimeout,
				WriteTimeout: metricsWriteTimeout,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
		}
	}()
}
