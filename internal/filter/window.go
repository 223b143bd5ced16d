package filter

import (
	"time"

	"kcisum/internal/domain"
)

// Cutoff returns the oldest instant a record may not reach to be reported
func Cutoff(now time.Time, window time.Duration) time.Time {
	return now.UTC().Add(-window)
}

// Recent keeps the records published strictly after cutoff, preserving their order.
// The first record whose published timestamp cannot be parsed aborts the scan.
func Recent(records []domain.Record, cutoff time.Time) ([]domain.Record, error) {
	recent := make([]domain.Record, 0, len(records))
	for i, r := range records {
		published, err := r.PublishedAt()
		if err != nil {
			return nil, &domain.TimestampError{Index: i, Board: r.Board, Value: r.Published}
		}
		if published.After(cutoff) {
			recent = append(recent, r)
		}
	}
	return recent, nil
}
