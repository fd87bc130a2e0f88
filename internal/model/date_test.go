package model

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("05-06-2024")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := FormatDate(d); got != "05-06-2024" {
		t.Errorf("round trip got %q, want 05-06-2024", got)
	}
	if d.Day() != 5 || d.Month() != time.June || d.Year() != 2024 {
		t.Errorf("parsed wrong date: %v", d)
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{"2024-06-05", "06/05/2024", "5-6-24", "", "not-a-date"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", s)
		}
	}
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{"disjoint", "01-06-2024", "05-06-2024", "10-06-2024", "12-06-2024", false},
		{"partial overlap", "01-06-2024", "05-06-2024", "03-06-2024", "07-06-2024", true},
		{"contained", "01-06-2024", "10-06-2024", "03-06-2024", "05-06-2024", true},
		{"identical", "01-06-2024", "05-06-2024", "01-06-2024", "05-06-2024", true},
		{"single shared day", "01-06-2024", "05-06-2024", "05-06-2024", "08-06-2024", true},
		{"single day ranges same day", "05-06-2024", "05-06-2024", "05-06-2024", "05-06-2024", true},
		{"adjacent no touch", "01-06-2024", "04-06-2024", "05-06-2024", "08-06-2024", false},
		{"across month boundary", "28-06-2024", "02-07-2024", "01-07-2024", "05-07-2024", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RangesOverlap(tc.start1, tc.end1, tc.start2, tc.end2); got != tc.want {
				t.Errorf("RangesOverlap(%q,%q,%q,%q) = %v, want %v",
					tc.start1, tc.end1, tc.start2, tc.end2, got, tc.want)
			}
			// Overlap is symmetric.
			if got := RangesOverlap(tc.start2, tc.end2, tc.start1, tc.end1); got != tc.want {
				t.Errorf("symmetric RangesOverlap = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRangesOverlapMalformedDatesFailOpen(t *testing.T) {
	// Any unparseable date in the pair means "no overlap": corrupt historical
	// rows must not block availability or break reads.
	cases := [][4]string{
		{"garbage", "05-06-2024", "03-06-2024", "07-06-2024"},
		{"01-06-2024", "", "03-06-2024", "07-06-2024"},
		{"01-06-2024", "05-06-2024", "2024-06-03", "07-06-2024"},
		{"01-06-2024", "05-06-2024", "03-06-2024", "garbage"},
	}
	for _, c := range cases {
		if RangesOverlap(c[0], c[1], c[2], c[3]) {
			t.Errorf("RangesOverlap(%q,%q,%q,%q) = true, want false for malformed input", c[0], c[1], c[2], c[3])
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if BookingStatusPending.IsTerminal() || BookingStatusConfirmed.IsTerminal() {
		t.Error("pending/confirmed must not be terminal")
	}
	if !BookingStatusRejected.IsTerminal() || !BookingStatusCancelled.IsTerminal() {
		t.Error("rejected/cancelled must be terminal")
	}
}
