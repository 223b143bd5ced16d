package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParsePublished(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
	}{
		{
			name:     "rfc3339 utc",
			value:    "2017-03-14T10:20:30Z",
			expected: time.Date(2017, 3, 14, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "rfc3339 with offset",
			value:    "2017-03-14T12:20:30+02:00",
			expected: time.Date(2017, 3, 14, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "fractional seconds with offset",
			value:    "2017-03-14T10:20:30.123456+00:00",
			expected: time.Date(2017, 3, 14, 10, 20, 30, 123456000, time.UTC),
		},
		{
			name:     "no zone is utc",
			value:    "2017-03-14T10:20:30",
			expected: time.Date(2017, 3, 14, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "space separator",
			value:    "2017-03-14 10:20:30.5",
			expected: time.Date(2017, 3, 14, 10, 20, 30, 500000000, time.UTC),
		},
		{
			name:     "space separator with offset",
			value:    "2017-03-14 11:20:30+01:00",
			expected: time.Date(2017, 3, 14, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "compact offset",
			value:    "2017-03-14T11:20:30+0100",
			expected: time.Date(2017, 3, 14, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "hour-only offset",
			value:    "2017-03-14T11:20:30+01",
			expected: time.Date(2017, 3, 14, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "basic format utc",
			value:    "20170314T102030Z",
			expected: time.Date(2017, 3, 14, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "basic format with offset",
			value:    "20170314T122030+0200",
			expected: time.Date(2017, 3, 14, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "basic format no zone",
			value:    "20170314T102030",
			expected: time.Date(2017, 3, 14, 10, 20, 30, 0, time.UTC),
		},
		{
			name:     "date only",
			value:    "2017-03-14",
			expected: time.Date(2017, 3, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePublished(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestParsePublished_Malformed(t *testing.T) {
	for _, value := range []string{"", "   ", "yesterday", "2017-13-45T10:00:00Z", "14/03/2017"} {
		t.Run(value, func(t *testing.T) {
			_, err := ParsePublished(value)
			if err == nil {
				t.Fatalf("expected error for %q", value)
			}
			if !errors.Is(err, ErrMalformedTimestamp) {
				t.Errorf("expected ErrMalformedTimestamp, got %v", err)
			}
		})
	}
}

func TestTimestampError(t *testing.T) {
	err := error(&TimestampError{Index: 2, Board: "rpi3", Value: "bogus"})
	if !errors.Is(err, ErrMalformedTimestamp) {
		t.Error("TimestampError should unwrap to ErrMalformedTimestamp")
	}
	expected := `[DATA_ERROR] record 2 (board "rpi3"): cannot parse published "bogus"`
	if err.Error() != expected {
		t.Errorf("expected %s, got %s", expected, err.Error())
	}
}

func TestHasCode(t *testing.T) {
	cause := errors.New("disk full")
	err := NewOutputError("write summary.html", cause)
	if !HasCode(err, ErrCodeOutput) {
		t.Error("expected OUTPUT_ERROR code")
	}
	if HasCode(err, ErrCodeStore) {
		t.Error("did not expect STORE_ERROR code")
	}
	if !errors.Is(err, cause) {
		t.Error("expected error to unwrap to its cause")
	}
	if HasCode(cause, ErrCodeOutput) {
		t.Error("plain error should carry no code")
	}
}

func TestRecord_TreeBranch(t *testing.T) {
	r := Record{Tree: "mainline", Branch: "master"}
	if r.TreeBranch() != "mainline/master" {
		t.Errorf("expected mainline/master, got %s", r.TreeBranch())
	}
}
