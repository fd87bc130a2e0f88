package repository

import (
	"context"
	"fmt"

	"github.com/Anubhav2007/GuestHouse/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createBookingsTable = `
	CREATE TABLE bookings (
		booking_id    TEXT,
		guesthouse_id TEXT,
		username      TEXT,
		start_date    TEXT,
		end_date      TEXT,
		status        TEXT,
		booked_at     TEXT
	)
`

// SnapshotRepository maintains the derived relational copy of the record
// store. The snapshot is rebuilt wholesale and never read back into the
// ledger.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Replace swaps the entire bookings table for the given collection in one
// transaction: drop, recreate, bulk insert.
func (r *SnapshotRepository) Replace(ctx context.Context, bookings []model.Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DROP TABLE IF EXISTS bookings`); err != nil {
		return fmt.Errorf("drop bookings table: %w", err)
	}
	if _, err := tx.Exec(ctx, createBookingsTable); err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}

	rows := make([][]any, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []any{
			b.ID, b.GuesthouseID, b.Username,
			b.StartDate, b.EndDate, string(b.Status), b.BookedAt,
		})
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"bookings"},
		[]string{"booking_id", "guesthouse_id", "username", "start_date", "end_date", "status", "booked_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy bookings: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
