package utils

import (
	"time"
)

const (
	// ShortDashDateLayout is the wire format the inventory API uses for dates.
	ShortDashDateLayout = "2006-01-02"
	// DisplayDateLayout is how date-tagged report cells render.
	DisplayDateLayout = "01/02/2006"
	// DisplayDateTimeLayout is how datetime-tagged report cells render.
	DisplayDateTimeLayout = "01/02/2006 15:04"
)

// ParseAPIDate parses a YYYY-MM-DD string from the inventory API. Empty or
// malformed values return a zero time and false rather than an error; callers
// treat those as absent.
func ParseAPIDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ShortDashDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatAPIDate renders a time in the inventory API wire format.
func FormatAPIDate(t time.Time) string {
	return t.Format(ShortDashDateLayout)
}
