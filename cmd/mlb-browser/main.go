package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/preston-bernstein/mlb-browser/internal/app"
	"github.com/preston-bernstein/mlb-browser/internal/config"
	"github.com/preston-bernstein/mlb-browser/internal/logging"
	"github.com/preston-bernstein/mlb-browser/internal/render"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_APP_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "mlb-browser",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, logger)
	err := a.Run(ctx, func(ctx context.Context, a *app.App) error {
		win := a.Window()
		return render.Run(ctx, a.Controller(), render.Options{
			Width:      win.Width,
			Height:     win.Height,
			Title:      win.Title,
			Background: a.Background(),
			Faces:      a.Faces(),
			Logger:     a.Logger(),
		})
	})
	if err != nil {
		stop()
		os.Exit(1)
	}
}
