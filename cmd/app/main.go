package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harwood/farmcore/internal/config"
	"github.com/harwood/farmcore/internal/contract"
	"github.com/harwood/farmcore/internal/database"
	"github.com/harwood/farmcore/internal/database/postgres"
	"github.com/harwood/farmcore/internal/domain"
	"github.com/harwood/farmcore/internal/economy"
	"github.com/harwood/farmcore/internal/event"
	"github.com/harwood/farmcore/internal/farm"
	"github.com/harwood/farmcore/internal/market"
	"github.com/harwood/farmcore/internal/metrics"
	"github.com/harwood/farmcore/internal/plot"
	"github.com/harwood/farmcore/internal/server"
	"github.com/harwood/farmcore/internal/worker"
	"github.com/harwood/farmcore/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx := context.Background()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), 10, 5*time.Minute, 30*time.Minute)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool, migrations.FS); err != nil {
		slog.Error(database.ErrMsgFailedToRunMigrations, "error", err)
		os.Exit(1)
	}

	eventBus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(eventBus); err != nil {
		slog.Error("Failed to register metrics collector", "error", err)
		os.Exit(1)
	}

	farmRepo := postgres.NewFarmRepository(dbPool)
	catalogRepo := postgres.NewCatalogRepository(dbPool)
	plotRepo := postgres.NewPlotRepository(dbPool)
	economyRepo := postgres.NewEconomyRepository(dbPool)
	contractRepo := postgres.NewContractRepository(dbPool)
	marketRepo := postgres.NewMarketRepository(dbPool)

	farmService := farm.NewService(farmRepo, catalogRepo, economyRepo)
	plotService := plot.NewService(plotRepo, catalogRepo, eventBus)
	economyService := economy.NewService(economyRepo, catalogRepo, eventBus)
	contractService := contract.NewService(contractRepo, catalogRepo, eventBus,
		domain.NewRand(time.Now().UnixNano()))
	marketService := market.NewService(marketRepo, catalogRepo, eventBus, cfg.StrictListingQuantity)

	srv := server.NewServer(cfg.Port, dbPool, farmService, plotService,
		economyService, contractService, marketService)

	sweeper := worker.NewContractSweeper(contractRepo, worker.DefaultSweepInterval)
	sweeper.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced to shut down", "error", err)
	}
	if err := sweeper.Stop(shutdownCtx); err != nil {
		slog.Error("Contract sweeper forced to shut down", "error", err)
	}
	slog.Info("Server stopped")
}
