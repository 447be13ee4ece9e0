package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hollowpine/frontier/internal/bootstrap"
	"github.com/hollowpine/frontier/internal/catalog"
	"github.com/hollowpine/frontier/internal/config"
	"github.com/hollowpine/frontier/internal/database"
	"github.com/hollowpine/frontier/internal/handler"
	"github.com/hollowpine/frontier/internal/inventory"
	"github.com/hollowpine/frontier/internal/logger"
	"github.com/hollowpine/frontier/internal/server"
)

const (
	dbMaxConns        = 10
	dbMaxConnIdleTime = 5 * time.Minute
	dbMaxConnLifetime = time.Hour
	shutdownTimeout   = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.NewConfig(
		cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))

	handler.InitValidator()

	ctx := context.Background()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)

	if err := bootstrap.SyncItemCatalog(ctx, cfg.ItemConfig, repos.Definitions); err != nil {
		slog.Error("Item catalog sync failed", "error", err)
		os.Exit(1)
	}

	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	catalogService := catalog.NewService(repos.Definitions)
	inventoryService := inventory.NewService(repos.Store, catalogService, resilientPublisher)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, inventoryService)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: resilientPublisher,
	})
}
