package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Anubhav2007/GuestHouse/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordStore is the durable flat collection backing the ledger. Load happens
// once at startup; every mutation rewrites the whole collection.
type RecordStore interface {
	Load() (bookings []model.Booking, repaired bool, err error)
	ReplaceAll(bookings []model.Booking) error
}

// GuesthouseDirectory is the read-only lookup of valid guesthouses.
type GuesthouseDirectory interface {
	ListAll() []model.Guesthouse
	Get(id string) (model.Guesthouse, bool)
}

// SnapshotExporter rebuilds the derived relational copy of the record store.
type SnapshotExporter interface {
	Replace(ctx context.Context, bookings []model.Booking) error
}

// UnknownGuesthouseName is the join sentinel for bookings whose guesthouse id
// is missing from the directory.
const UnknownGuesthouseName = "Unknown Guesthouse"

// BookingService owns the booking collection and its state transitions. One
// lock guards the read-check-then-write sequence, so two concurrent requests
// for overlapping ranges cannot both pass the availability check.
type BookingService struct {
	mu       sync.RWMutex
	bookings []model.Booking

	store     RecordStore
	directory GuesthouseDirectory
	snapshot  SnapshotExporter // nil when export is disabled
	logger    *zap.Logger
}

func NewBookingService(
	store RecordStore,
	directory GuesthouseDirectory,
	snapshot SnapshotExporter,
	logger *zap.Logger,
) (*BookingService, error) {
	bookings, repaired, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	if repaired {
		// Rows were assigned fresh ids during load, write them back so the
		// store and the working set agree.
		if err := store.ReplaceAll(bookings); err != nil {
			return nil, fmt.Errorf("persist repaired bookings: %w", err)
		}
		logger.Info("Repaired booking rows persisted", zap.Int("total", len(bookings)))
	}

	return &BookingService{
		bookings:  bookings,
		store:     store,
		directory: directory,
		snapshot:  snapshot,
		logger:    logger,
	}, nil
}

// IsAvailable reports whether the inclusive date range is free on the given
// guesthouse: no pending or confirmed booking may overlap it.
func (s *BookingService) IsAvailable(guesthouseID, startDate, endDate string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAvailableLocked(strings.TrimSpace(guesthouseID), startDate, endDate, "")
}

// isAvailableLocked scans the working set under the caller's lock. excludeID
// skips one booking, used when re-checking a confirmation against everyone
// else.
func (s *BookingService) isAvailableLocked(guesthouseID, startDate, endDate, excludeID string) bool {
	for _, b := range s.bookings {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if b.GuesthouseID != guesthouseID {
			continue
		}
		if b.Status != model.BookingStatusPending && b.Status != model.BookingStatusConfirmed {
			continue
		}
		if b.StartDate == "" || b.EndDate == "" {
			continue
		}
		if model.RangesOverlap(startDate, endDate, b.StartDate, b.EndDate) {
			return false
		}
	}
	return true
}

// CreateRequest registers a new pending booking. The caller has already
// validated that startDate <= endDate. A successful return means the record
// is durably persisted.
func (s *BookingService) CreateRequest(ctx context.Context, guesthouseID, username, startDate, endDate string) (model.Booking, error) {
	guesthouseID = strings.TrimSpace(guesthouseID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isAvailableLocked(guesthouseID, startDate, endDate, "") {
		return model.Booking{}, ErrNotAvailable
	}

	booking := model.Booking{
		ID:           uuid.NewString(),
		GuesthouseID: guesthouseID,
		Username:     username,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       model.BookingStatusPending,
		BookedAt:     model.FormatDate(time.Now()),
	}

	next := append(slices.Clone(s.bookings), booking)
	if err := s.store.ReplaceAll(next); err != nil {
		// Working set stays unchanged, nothing diverges from the store.
		return model.Booking{}, fmt.Errorf("persist bookings: %w", err)
	}
	s.bookings = next
	s.exportLocked(ctx)

	s.logger.Info("Booking requested",
		zap.String("booking_id", booking.ID),
		zap.String("guesthouse_id", guesthouseID),
		zap.String("username", username),
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
	)

	return booking, nil
}

// SetStatus applies the admin decision on a booking: confirmed or rejected.
// A confirmation re-runs the availability check against all other pending and
// confirmed bookings of the same guesthouse, so two mutually exclusive
// pending requests cannot both end up confirmed. Rejection is unconditional.
func (s *BookingService) SetStatus(ctx context.Context, bookingID string, status model.BookingStatus) error {
	if status != model.BookingStatusConfirmed && status != model.BookingStatusRejected {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.bookings, func(b model.Booking) bool { return b.ID == bookingID })
	if i < 0 {
		return ErrBookingNotFound
	}
	booking := s.bookings[i]

	if status == model.BookingStatusConfirmed {
		if !s.isAvailableLocked(booking.GuesthouseID, booking.StartDate, booking.EndDate, booking.ID) {
			return ErrNotAvailable
		}
	}

	next := slices.Clone(s.bookings)
	next[i].Status = status
	if err := s.store.ReplaceAll(next); err != nil {
		return fmt.Errorf("persist bookings: %w", err)
	}
	s.bookings = next
	s.exportLocked(ctx)

	s.logger.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(status)),
	)

	return nil
}

// Cancel lets the owner withdraw a pending or confirmed booking. The record
// stays in the store as history.
func (s *BookingService) Cancel(ctx context.Context, bookingID, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.bookings, func(b model.Booking) bool { return b.ID == bookingID })
	if i < 0 {
		return ErrBookingNotFound
	}
	booking := s.bookings[i]

	if booking.Username != username {
		return ErrNotOwner
	}

	switch booking.Status {
	case model.BookingStatusCancelled:
		return ErrAlreadyCancelled
	case model.BookingStatusPending, model.BookingStatusConfirmed:
		// cancellable
	default:
		return ErrNotCancellable
	}

	next := slices.Clone(s.bookings)
	next[i].Status = model.BookingStatusCancelled
	if err := s.store.ReplaceAll(next); err != nil {
		return fmt.Errorf("persist bookings: %w", err)
	}
	s.bookings = next
	s.exportLocked(ctx)

	s.logger.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("username", username),
	)

	return nil
}

// UserBookings returns the requester's bookings in storage order.
func (s *BookingService) UserBookings(username string) []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Booking
	for _, b := range s.bookings {
		if b.Username == username {
			out = append(out, b)
		}
	}
	return out
}

// AllBookings returns every booking joined with its guesthouse display name.
func (s *BookingService) AllBookings() []model.BookingWithGuesthouse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.BookingWithGuesthouse, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, s.withGuesthouseName(b))
	}
	return out
}

// PendingBookings returns the admin approval queue, joined like AllBookings.
func (s *BookingService) PendingBookings() []model.BookingWithGuesthouse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.BookingWithGuesthouse
	for _, b := range s.bookings {
		if b.Status == model.BookingStatusPending {
			out = append(out, s.withGuesthouseName(b))
		}
	}
	return out
}

// ExportSnapshot rebuilds the relational snapshot from the working set on
// demand.
func (s *BookingService) ExportSnapshot(ctx context.Context) error {
	if s.snapshot == nil {
		return ErrSnapshotDisabled
	}

	s.mu.RLock()
	bookings := slices.Clone(s.bookings)
	s.mu.RUnlock()

	if err := s.snapshot.Replace(ctx, bookings); err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}

	s.logger.Info("Snapshot exported", zap.Int("bookings", len(bookings)))
	return nil
}

// exportLocked refreshes the snapshot after a mutation. The snapshot is
// eventually consistent with the record store, so a failed export is logged
// and never fails the operation that triggered it.
func (s *BookingService) exportLocked(ctx context.Context) {
	if s.snapshot == nil {
		return
	}
	if err := s.snapshot.Replace(ctx, slices.Clone(s.bookings)); err != nil {
		s.logger.Error("Snapshot export failed", zap.Error(err))
	}
}

func (s *BookingService) withGuesthouseName(b model.Booking) model.BookingWithGuesthouse {
	name := UnknownGuesthouseName
	if g, ok := s.directory.Get(b.GuesthouseID); ok {
		name = g.Name
	}
	return model.BookingWithGuesthouse{Booking: b, GuesthouseName: name}
}
