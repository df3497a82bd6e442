package timeparse

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseRelativeOffsets(t *testing.T) {
	t.Parallel()

	cases := map[string]time.Duration{
		"+0s":  0,
		"+30m": 30 * time.Minute,
		"+1h":  time.Hour,
		"+2d":  48 * time.Hour,
	}

	for input, offset := range cases {
		got, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", input, err)
		}
		want := time.Now().UTC().Add(offset)
		if diff := got.Sub(want); diff < -2*time.Second || diff > 2*time.Second {
			t.Fatalf("Parse(%q) = %v, want within 2s of %v", input, got, want)
		}
	}
}

func TestParseRFC3339(t *testing.T) {
	t.Parallel()

	got, err := Parse("2099-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Parse = %v, want %v", got, want)
	}

	// Zoned timestamps convert to UTC.
	got, err = Parse("2025-06-01T12:00:00+02:00")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Fatalf("Parse returned non-UTC location %v", got.Location())
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]error{
		"tomorrow":   ErrInvalidTimestamp,
		"2025-01-01": ErrInvalidTimestamp,
		"":           ErrInvalidTimestamp,
		"+banana":    ErrInvalidDuration,
		"+":          ErrInvalidDuration,
	}

	for input, want := range cases {
		_, err := Parse(input)
		if err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", input)
		}
		if !errors.Is(err, want) {
			t.Fatalf("Parse(%q) = %v, want %v", input, err, want)
		}
	}
}

func TestFormatRemaining(t *testing.T) {
	t.Parallel()

	if got := FormatRemaining(90 * time.Second); got != "1 minute 30 seconds" {
		t.Fatalf("FormatRemaining(90s) = %q", got)
	}
	if got := FormatRemaining(0); got != "0 seconds" {
		t.Fatalf("FormatRemaining(0) = %q", got)
	}

	got := FormatRemaining(-2 * time.Hour)
	if !strings.HasPrefix(got, "overdue by ") || !strings.Contains(got, "2 hours") {
		t.Fatalf("FormatRemaining(-2h) = %q", got)
	}
}
