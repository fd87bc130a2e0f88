package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Anubhav2007/GuestHouse/internal/model"
	"github.com/google/uuid"
)

// bookingColumns is the exact header of bookings.csv. The on-disk layout is a
// compatibility requirement: other tools read the same file.
var bookingColumns = []string{
	"booking_id", "guesthouse_id", "username",
	"start_date", "end_date", "status", "booked_at",
}

// BookingStore is the durable flat record store behind the ledger. Every
// mutation rewrites the whole file; there is no incremental append.
type BookingStore struct {
	path string
}

func NewBookingStore(path string) *BookingStore {
	return &BookingStore{path: path}
}

// Load reads the whole collection. A missing file is created with a header, a
// file with a broken header is re-initialized empty. Rows without a booking_id
// get a fresh one; the second return value reports that such a repair happened
// so the caller can persist the collection back.
func (s *BookingStore) Load() ([]model.Booking, bool, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.writeAll(nil); err != nil {
			return nil, false, fmt.Errorf("init bookings file: %w", err)
		}
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("open bookings file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		if err := s.writeAll(nil); err != nil {
			return nil, false, fmt.Errorf("init bookings file: %w", err)
		}
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read bookings header: %w", err)
	}

	idx := columnIndex(header)
	for _, col := range bookingColumns {
		if _, ok := idx[col]; !ok {
			// Header is unusable, start over with an empty collection.
			if err := s.writeAll(nil); err != nil {
				return nil, false, fmt.Errorf("reinit bookings file: %w", err)
			}
			return nil, true, nil
		}
	}

	var bookings []model.Booking
	repaired := false
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("read bookings row: %w", err)
		}

		b := model.Booking{
			ID:           field(row, idx, "booking_id"),
			GuesthouseID: strings.TrimSpace(field(row, idx, "guesthouse_id")),
			Username:     field(row, idx, "username"),
			StartDate:    field(row, idx, "start_date"),
			EndDate:      field(row, idx, "end_date"),
			Status:       model.BookingStatus(field(row, idx, "status")),
			BookedAt:     field(row, idx, "booked_at"),
		}
		if b.ID == "" {
			b.ID = uuid.NewString()
			repaired = true
		}
		bookings = append(bookings, b)
	}

	return bookings, repaired, nil
}

// ReplaceAll rewrites the whole collection atomically: the rows go to a
// temporary file in the same directory which is then renamed over the store.
func (s *BookingStore) ReplaceAll(bookings []model.Booking) error {
	return s.writeAll(bookings)
}

func (s *BookingStore) writeAll(bookings []model.Booking) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "bookings-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(bookingColumns); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, b := range bookings {
		row := []string{
			b.ID, b.GuesthouseID, b.Username,
			b.StartDate, b.EndDate, string(b.Status), b.BookedAt,
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush bookings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace bookings file: %w", err)
	}
	return nil
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
