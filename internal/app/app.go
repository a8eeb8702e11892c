package app

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mosg85/Angeln-Eventplaner/internal/config"
	"github.com/mosg85/Angeln-Eventplaner/internal/handler"
	"github.com/mosg85/Angeln-Eventplaner/internal/middleware"
	"github.com/mosg85/Angeln-Eventplaner/internal/notification"
	"github.com/mosg85/Angeln-Eventplaner/internal/router"
	"github.com/mosg85/Angeln-Eventplaner/internal/scheduler"
	"github.com/mosg85/Angeln-Eventplaner/internal/service"
	"github.com/mosg85/Angeln-Eventplaner/internal/store"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"Angeln-Eventplaner",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	fileStore := store.NewFileStore(a.cfg.Store.Path, a.cfg.Store.Strict, a.log)
	guard := store.NewGuard(fileStore)

	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	secret := []byte(a.cfg.Auth.JWTSecret)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	authService := service.NewAuthService(guard, secret, a.cfg.Auth.TokenTTL, a.cfg.Auth.ResetTokenTTL, a.log)
	directoryService := service.NewDirectoryService(guard, a.log)
	registryService := service.NewRegistryService(guard, notifier, a.log)
	engineService := service.NewEngineService(guard, notifier, rnd, a.log)

	a.scheduler = scheduler.New(
		authService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(authService, directoryService, registryService, engineService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(secret),
		middleware.RequireAdmin(),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
