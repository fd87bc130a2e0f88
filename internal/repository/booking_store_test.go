package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Anubhav2007/GuestHouse/internal/model"
)

func testBookings() []model.Booking {
	return []model.Booking{
		{ID: "b1", GuesthouseID: "G1", Username: "alice", StartDate: "01-06-2024", EndDate: "05-06-2024", Status: model.BookingStatusPending, BookedAt: "20-05-2024"},
		{ID: "b2", GuesthouseID: "G2", Username: "bob", StartDate: "10-06-2024", EndDate: "12-06-2024", Status: model.BookingStatusConfirmed, BookedAt: "21-05-2024"},
		{ID: "b3", GuesthouseID: "G1", Username: "carol", StartDate: "15-06-2024", EndDate: "18-06-2024", Status: model.BookingStatusCancelled, BookedAt: "22-05-2024"},
	}
}

func TestLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	store := NewBookingStore(path)

	bookings, repaired, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(bookings) != 0 || repaired {
		t.Fatalf("expected empty unrepaired load, got %d bookings repaired=%v", len(bookings), repaired)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	want := "booking_id,guesthouse_id,username,start_date,end_date,status,booked_at\n"
	if string(data) != want {
		t.Errorf("header mismatch:\ngot  %q\nwant %q", data, want)
	}
}

func TestReplaceAllLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	store := NewBookingStore(path)

	if err := store.ReplaceAll(testBookings()); err != nil {
		t.Fatalf("replace: %v", err)
	}

	loaded, repaired, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if repaired {
		t.Error("clean data reported as repaired")
	}
	if len(loaded) != 3 {
		t.Fatalf("got %d bookings, want 3", len(loaded))
	}
	for i, want := range testBookings() {
		if loaded[i] != want {
			t.Errorf("booking %d: got %+v, want %+v", i, loaded[i], want)
		}
	}

	// replace_all(load()) must be a no-op on the file content.
	before, _ := os.ReadFile(path)
	if err := store.ReplaceAll(loaded); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Errorf("round trip changed file content:\nbefore %q\nafter  %q", before, after)
	}
}

func TestLoadRepairsBlankIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	csv := "booking_id,guesthouse_id,username,start_date,end_date,status,booked_at\n" +
		",G1,alice,01-06-2024,05-06-2024,pending,20-05-2024\n" +
		"b2,G2,bob,10-06-2024,12-06-2024,confirmed,21-05-2024\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	bookings, repaired, err := NewBookingStore(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !repaired {
		t.Error("blank id not reported as repaired")
	}
	if bookings[0].ID == "" {
		t.Error("blank id was not filled")
	}
	if bookings[1].ID != "b2" {
		t.Errorf("existing id changed to %q", bookings[1].ID)
	}
}

func TestLoadIsColumnOrderIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	csv := "status,booked_at,booking_id,username,guesthouse_id,end_date,start_date\n" +
		"pending,20-05-2024,b1,alice, G1 ,05-06-2024,01-06-2024\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	bookings, _, err := NewBookingStore(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("got %d bookings, want 1", len(bookings))
	}
	b := bookings[0]
	if b.ID != "b1" || b.GuesthouseID != "G1" || b.StartDate != "01-06-2024" || b.EndDate != "05-06-2024" {
		t.Errorf("columns mapped wrong: %+v", b)
	}
	if b.GuesthouseID != strings.TrimSpace(b.GuesthouseID) {
		t.Errorf("guesthouse id not trimmed: %q", b.GuesthouseID)
	}
}

func TestLoadReinitializesBrokenHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	if err := os.WriteFile(path, []byte("id,foo,bar\n1,2,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	bookings, repaired, err := NewBookingStore(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("expected empty collection after reinit, got %d", len(bookings))
	}
	if !repaired {
		t.Error("reinit not reported")
	}

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "booking_id,") {
		t.Errorf("file was not re-initialized: %q", data)
	}
}

func TestLoadEmptyFileGetsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	bookings, _, err := NewBookingStore(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("got %d bookings from empty file", len(bookings))
	}

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "booking_id,") {
		t.Errorf("empty file did not get a header: %q", data)
	}
}
