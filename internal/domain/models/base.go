package models

import (
	"time"
)

// Wire formats for dates and timestamps. The client expects timestamps as
// "YYYY-MM-DD HH:MM:SS±zzzz" and plain dates as "YYYY-MM-DD".
const (
	TimestampLayout = "2006-01-02 15:04:05-0700"
	DateLayout      = "2006-01-02"
)

// formatTimestamp renders a timestamp in the wire format, substituting the
// current UTC time when the stored value is missing.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return t.Format(TimestampLayout)
}

// formatDate renders an optional date, or nil when absent.
func formatDate(t *time.Time) interface{} {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD wire date.
func ParseDate(s string) (*time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseTimestamp parses a wire timestamp, with or without a zone offset.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}
