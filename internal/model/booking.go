package model

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether the status no longer occupies a date range.
// Rejected and cancelled bookings stay in the store as history but never
// block availability.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusRejected || s == BookingStatusCancelled
}

type Booking struct {
	ID           string        `json:"booking_id"`
	GuesthouseID string        `json:"guesthouse_id"`
	Username     string        `json:"username"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	Status       BookingStatus `json:"status"`
	BookedAt     string        `json:"booked_at"`
}

// BookingWithGuesthouse is the admin projection: a booking joined with the
// guesthouse display name from the directory.
type BookingWithGuesthouse struct {
	Booking
	GuesthouseName string `json:"guesthouse_name"`
}
