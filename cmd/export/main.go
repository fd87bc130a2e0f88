package main

import (
	"context"
	"log"

	"github.com/Anubhav2007/GuestHouse/internal/app"
	"github.com/Anubhav2007/GuestHouse/internal/config"
	"github.com/Anubhav2007/GuestHouse/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// One-shot export: load the flat record store and rebuild the relational
// snapshot from it.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.SnapshotDSN == "" {
		log.Fatal("SNAPSHOT_DSN is required for export")
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

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

	bookings, repaired, err := repository.NewBookingStore(cfg.BookingsFile()).Load()
	if err != nil {
		logger.Fatal("Failed to load bookings", zap.Error(err))
	}
	if repaired {
		logger.Warn("Booking rows were repaired during load; run the server to persist them")
	}

	if err := repository.NewSnapshotRepository(pool).Replace(ctx, bookings); err != nil {
		logger.Fatal("Snapshot export failed", zap.Error(err))
	}

	logger.Info("Snapshot exported", zap.Int("bookings", len(bookings)))
}
