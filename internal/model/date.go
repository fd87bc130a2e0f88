package model

import "time"

// DateLayout is the calendar-date format used everywhere in the record store:
// booking dates and the booked_at stamp are all DD-MM-YYYY, no time of day.
const DateLayout = "02-01-2006"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// RangesOverlap reports whether two inclusive date ranges intersect. A single
// shared day counts as an overlap. If any of the four dates fails to parse the
// pair is treated as non-overlapping, which keeps read paths working over
// partially corrupt historical rows.
func RangesOverlap(start1, end1, start2, end2 string) bool {
	s1, err := ParseDate(start1)
	if err != nil {
		return false
	}
	e1, err := ParseDate(end1)
	if err != nil {
		return false
	}
	s2, err := ParseDate(start2)
	if err != nil {
		return false
	}
	e2, err := ParseDate(end2)
	if err != nil {
		return false
	}
	return !s1.After(e2) && !s2.After(e1)
}
