package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/data/db"
	"github.com/yungbote/portfolio-backend/internal/data/seed"
	apphttp "github.com/yungbote/portfolio-backend/internal/http"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *apphttp.Server
	Cfg      Config
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics

	dbService    *db.Service
	clients      Clients
	otelShutdown func(context.Context) error
}

// New builds the logger and configuration from the environment and wires
// the application.
func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	return NewWithConfig(ctx, log, cfg)
}

func NewWithConfig(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.OtelEnabled,
		ServiceName: cfg.OtelServiceName,
		Environment: cfg.Environment,
		Endpoint:    cfg.OtelEndpoint,
		Insecure:    cfg.OtelInsecure,
		SampleRatio: cfg.OtelSampleRatio,
	})

	dbService, err := db.Open(log, db.Config{
		Driver: cfg.DBDriver,
		DSN:    cfg.DatabaseURL,
		Silent: cfg.LogMode != "development",
	})
	if err != nil {
		_ = otelShutdown(ctx)
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		_ = dbService.Close()
		_ = otelShutdown(ctx)
		return nil, fmt.Errorf("database automigrate: %w", err)
	}
	theDB := dbService.DB()

	a := &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		dbService:    dbService,
		otelShutdown: otelShutdown,
	}

	store, err := resolveUploadStore(ctx, log, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	clients, err := wireClients(log, cfg, store)
	if err != nil {
		a.clients = Clients{Uploads: store}
		a.Close()
		return nil, err
	}
	a.clients = clients

	a.Repos = wireRepos(theDB, log)
	a.Services = wireServices(theDB, log, a.Repos, clients)

	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load seed data: %w", err)
	}
	seeded, err := a.Services.Bootstrap.Seed(ctx, data)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("seed database: %w", err)
	}
	log.Info("Database ready", "driver", dbService.Driver(), "seeded", seeded)

	a.Metrics = observability.New(cfg.MetricsEnabled)
	handlers := wireHandlers(log, cfg, a.Services, store, a.Metrics)
	a.Server = wireServer(log, cfg, handlers, a.Metrics)
	return a, nil
}

// Run serves HTTP until ctx is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	a.Metrics.StartDBCollector(gctx, a.Log, a.DB)

	addr := a.Cfg.Addr()
	g.Go(func() error {
		a.Log.Info("Server listening", "addr", addr)
		return a.Server.Run(gctx, addr, a.shutdownTimeout())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.Log.Info("Server stopped")
	return nil
}

func (a *App) shutdownTimeout() time.Duration {
	if a.Cfg.ShutdownTimeout > 0 {
		return a.Cfg.ShutdownTimeout
	}
	return 10 * time.Second
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if c, ok := a.clients.Uploads.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.Log.Warn("Closing upload store failed", "error", err)
		}
	}
	if a.dbService != nil {
		if err := a.dbService.Close(); err != nil {
			a.Log.Warn("Closing database failed", "error", err)
		}
		a.dbService = nil
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("OpenTelemetry shutdown failed", "error", err)
		}
		cancel()
		a.otelShutdown = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
