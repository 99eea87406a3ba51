package webapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Taha-Raees/zetratech-front/internal/app/wiring"
	"github.com/Taha-Raees/zetratech-front/internal/config"
	"github.com/Taha-Raees/zetratech-front/internal/device"
	"github.com/Taha-Raees/zetratech-front/internal/repo/memory"
	redrepo "github.com/Taha-Raees/zetratech-front/internal/repo/redis"
	consolesvc "github.com/Taha-Raees/zetratech-front/internal/services/console"
	httptransport "github.com/Taha-Raees/zetratech-front/internal/transport/http"
	"github.com/Taha-Raees/zetratech-front/internal/ui/web"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	redis      *goredis.Client
	visitors   *httptransport.Visitors
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	var (
		store       consolesvc.Store
		redisClient *goredis.Client
	)
	if cfg.Redis.Enabled() {
		client, err := redrepo.NewClient(ctx, redrepo.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("redis init failed, keeping console sessions in memory", zap.Error(err))
		} else {
			redisClient = client
			store = redrepo.NewSessionRepo(client)
		}
	}
	if store == nil {
		store = memory.NewSessionRepo()
	}

	pages, err := web.NewPages()
	if err != nil {
		return nil, fmt.Errorf("load page templates: %w", err)
	}

	visitors := httptransport.NewVisitors(httptransport.VisitorConfig{
		APIBaseURL: cfg.API.BaseURL,
		APITimeout: cfg.API.Timeout,
		LoginPath:  cfg.API.LoginPath,
		DefaultViewport: device.Viewport{
			Width:       cfg.View.Width,
			Height:      cfg.View.Height,
			TouchEvents: cfg.View.Touch,
		},
		OrientationSettle: cfg.View.OrientationSettle,
		Exports:           wiring.ExportSink(cfg, log),
		Logger:            log,
	})

	srv, err := httptransport.NewServer(httptransport.Dependencies{
		Sessions:   consolesvc.NewService(store, cfg.Session.TTL),
		Visitors:   visitors,
		Pages:      pages,
		CookieName: cfg.Session.CookieName,
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}
	router := httptransport.NewRouter(srv)

	return &App{
		cfg:    cfg,
		logger: log,
		server: &http.Server{
			Addr:         cfg.HTTP.Addr,
			Handler:      router,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
		},
		redis:      redisClient,
		visitors:   visitors,
		httpRouter: router,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("web console started",
		zap.String("addr", a.cfg.HTTP.Addr),
		zap.String("api", a.cfg.API.BaseURL),
	)
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	a.visitors.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
