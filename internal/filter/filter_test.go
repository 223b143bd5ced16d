package filter

import (
	"testing"

	"kcisum/internal/domain"
)

func boards(names ...string) []domain.Record {
	records := make([]domain.Record, len(names))
	for i, n := range names {
		records[i] = domain.Record{Board: n}
	}
	return records
}

func TestFilter_FilterByBoard(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		records  []domain.Record
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			records:  boards("rpi3", "beaglebone-black", "juno"),
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			records:  boards("rpi3", "rpi4", "juno"),
			pattern:  "rpi*",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			records:  boards("beaglebone-black", "am335x-boneblack", "juno", "beagle-xm"),
			pattern:  "*beagle*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			records:  boards("rpi3", "beaglebone-black", "juno"),
			pattern:  "bone",
			expected: 1,
		},
		{
			name:     "question mark matches one character",
			records:  boards("rpi3", "rpi4", "rpi10"),
			pattern:  "rpi?",
			expected: 2,
		},
		{
			name:     "no matches",
			records:  boards("rpi3", "juno"),
			pattern:  "*sama5*",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByBoard(tt.records, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestMatchName_EdgeCases(t *testing.T) {
	t.Run("parts must appear in order", func(t *testing.T) {
		if MatchName("*black*beagle*", "beaglebone-black") {
			t.Error("expected no match for out-of-order parts")
		}
		if !MatchName("*beagle*black*", "beaglebone-black") {
			t.Error("expected match for in-order parts")
		}
	})

	t.Run("only wildcards", func(t *testing.T) {
		if !MatchName("*", "rpi3") {
			t.Error("expected * to match through filepath.Match")
		}
	})

	t.Run("malformed glob falls back to substrings", func(t *testing.T) {
		if !MatchName("*[rpi*", "x[rpi3") {
			t.Error("expected substring fallback for a bad glob")
		}
	})
}
