package domain

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for the published field, tried in order.
// Layouts without a zone are parsed as UTC.
var publishedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z07",
	"20060102T150405Z0700",
	"20060102T150405",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02",
}

// ParsePublished parses an ISO-8601 timestamp as written by the boot labs
func ParsePublished(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrMalformedTimestamp)
	}
	for _, layout := range publishedLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, value)
}

// PublishedAt returns the parsed published timestamp of the record
func (r Record) PublishedAt() (time.Time, error) {
	return ParsePublished(r.Published)
}
