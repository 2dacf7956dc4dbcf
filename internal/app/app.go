package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/pickwise/laptop-advisor-backend/internal/db"
	httpx "github.com/pickwise/laptop-advisor-backend/internal/http"
	"github.com/pickwise/laptop-advisor-backend/internal/observability"
	"github.com/pickwise/laptop-advisor-backend/internal/platform/envutil"
	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *httpx.Server
	Cfg      Config
	Repos    Repos
	Services Services

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := envutil.String("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig()

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: envutil.String("APP_ENV", "development"),
		Version:     cfg.Version,
	})

	gdb, err := db.Open(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	reposet := wireRepos(gdb, log)

	if _, err := db.SeedIfEmpty(context.Background(), reposet.Laptop, log); err != nil {
		log.Sync()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	serviceset := wireServices(log, cfg, reposet)

	if n, err := serviceset.Catalog.Reload(context.Background()); err != nil {
		log.Sync()
		return nil, fmt.Errorf("load catalog: %w", err)
	} else {
		log.Info("Catalog loaded", "laptops", n)
	}

	handlerset := wireHandlers(cfg, serviceset)
	server := wireRouter(cfg, log, handlerset)

	return &App{
		Log:          log,
		DB:           gdb,
		Server:       server,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until the context is cancelled or a SIGINT/SIGTERM
// arrives, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("Server listening", "port", a.Cfg.Port)
		return a.Server.Run(":" + a.Cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("OTel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
