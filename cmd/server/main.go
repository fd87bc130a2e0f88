package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anubhav2007/GuestHouse/internal/app"
	"github.com/Anubhav2007/GuestHouse/internal/config"
	"github.com/Anubhav2007/GuestHouse/internal/controller"
	"github.com/Anubhav2007/GuestHouse/internal/repository"
	"github.com/Anubhav2007/GuestHouse/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	guesthouseStore, err := repository.NewGuesthouseStore(cfg.GuesthousesFile())
	if err != nil {
		logger.Fatal("Failed to load guesthouse directory", zap.Error(err))
	}
	userStore, err := repository.NewUserStore(cfg.UsersFile())
	if err != nil {
		logger.Fatal("Failed to load user directory", zap.Error(err))
	}
	bookingStore := repository.NewBookingStore(cfg.BookingsFile())

	// The snapshot side is optional: with no DSN the ledger runs on the flat
	// store alone.
	var snapshot service.SnapshotExporter
	if cfg.SnapshotDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.SnapshotDSN)
		if err != nil {
			logger.Fatal("Failed to connect to snapshot store", zap.Error(err))
		}
		defer pool.Close()

		migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
		if err != nil {
			logger.Fatal("Failed to create migrator", zap.Error(err))
		}
		if err := migrator.Run(ctx); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
		migrator.Close()

		snapshot = repository.NewSnapshotRepository(pool)
	}

	bookingService, err := service.NewBookingService(bookingStore, guesthouseStore, snapshot, logger)
	if err != nil {
		logger.Fatal("Failed to initialize booking ledger", zap.Error(err))
	}

	// Initial sync so the snapshot reflects the store before any mutation.
	if snapshot != nil {
		if err := bookingService.ExportSnapshot(ctx); err != nil {
			logger.Error("Initial snapshot sync failed", zap.Error(err))
		}
	}

	guesthouseService := service.NewGuesthouseService(guesthouseStore)
	authService := service.NewAuthService(userStore, cfg.JWTSecret, cfg.JWTTTLHours, logger)

	server := controller.NewServer(authService, guesthouseService, bookingService, cfg.JWTSecret, logger)

	go func() {
		logger.Info("Starting guesthouse server",
			zap.String("environment", cfg.Environment),
			zap.String("port", cfg.Port),
			zap.Bool("snapshot_enabled", snapshot != nil),
		)
		if err := server.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
