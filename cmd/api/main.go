package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/org-chart-service/internal/api/http"
	"github.com/spec-kit/org-chart-service/internal/config"
	"github.com/spec-kit/org-chart-service/internal/observability"
	"github.com/spec-kit/org-chart-service/internal/persistence"
	"github.com/spec-kit/org-chart-service/internal/repository"
	"github.com/spec-kit/org-chart-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots, closeStore := openSnapshotStore(ctx, cfg, logger)
	defer closeStore()

	orgService := service.NewOrganizationService(service.OrganizationDependencies{
		SnapshotRepo: snapshots,
		SnapshotKey:  cfg.Organization.Key,
		Logger:       logger,
	})

	if cfg.Organization.SeedFile != "" {
		blob, err := os.ReadFile(cfg.Organization.SeedFile)
		if err != nil {
			logger.Fatal("failed to read seed file", zap.String("file", cfg.Organization.SeedFile), zap.Error(err))
		}
		if _, err := orgService.Seed(ctx, blob); err != nil {
			logger.Fatal("failed to seed organization data", zap.Error(err))
		}
	}

	app := httptransport.NewServer(httptransport.ServerDependencies{
		App:          cfg.App,
		Profile:      cfg.Profile,
		Organization: orgService,
		Logger:       logger,
		Metrics:      observability.NewMetrics("orgchart"),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("store", cfg.Store.Backend))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// openSnapshotStore connects the configured backend and returns its cleanup.
func openSnapshotStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.SnapshotRepository, func()) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		return repository.NewPostgresSnapshotRepository(pg.PoolHandle()), pg.Close
	case config.StoreBackendMemory:
		logger.Warn("using in-memory snapshot store; data is lost on restart")
		return repository.NewMemorySnapshotRepository(), func() {}
	default:
		redis := persistence.NewRedis(cfg.Redis, logger)
		return repository.NewRedisSnapshotRepository(redis.Client), redis.Close
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
