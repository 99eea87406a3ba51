package cliapp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Taha-Raees/zetratech-front/internal/app/webapp"
	"github.com/Taha-Raees/zetratech-front/internal/infra/logger"
)

const shutdownTimeout = 10 * time.Second

// serve runs the web console until ctx is cancelled. It logs JSON like any other
// service rather than through the console logger.
func (a *App) serve(ctx context.Context, args []string) error {
	fs := newFlagSet("serve")
	addr := fs.String("addr", a.cfg.HTTP.Addr, "listen address")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	cfg := a.cfg
	cfg.HTTP.Addr = *addr

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	app, err := webapp.New(ctx, cfg, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown web console", zap.Error(err))
			return err
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
