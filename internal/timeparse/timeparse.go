// Package timeparse converts user-supplied time expressions into absolute
// UTC instants and renders durations back into human-readable form.
package timeparse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hako/durafmt"
	str2duration "github.com/xhit/go-str2duration/v2"
)

var (
	// ErrInvalidDuration reports a "+"-prefixed expression whose remainder
	// is not a parsable duration.
	ErrInvalidDuration = errors.New("invalid duration expression")
	// ErrInvalidTimestamp reports an absolute expression that is not valid
	// RFC 3339.
	ErrInvalidTimestamp = errors.New("invalid RFC 3339 timestamp")
)

// Parse resolves a time expression to a UTC instant. Expressions starting
// with "+" are relative offsets from now ("+30m", "+1h", "+2d"); anything
// else must be an RFC 3339 timestamp, which is converted to UTC.
func Parse(input string) (time.Time, error) {
	if rest, ok := strings.CutPrefix(input, "+"); ok {
		d, err := str2duration.ParseDuration(rest)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDuration, rest, err)
		}
		return time.Now().UTC().Add(d), nil
	}

	t, err := time.Parse(time.RFC3339, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimestamp, input, err)
	}
	return t.UTC(), nil
}

// FormatRemaining renders a signed remaining duration for display. Negative
// durations belong to overdue reminders and are rendered as such.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		return "overdue by " + durafmt.Parse((-d).Round(time.Second)).LimitFirstN(2).String()
	}
	return durafmt.Parse(d.Round(time.Second)).LimitFirstN(2).String()
}
