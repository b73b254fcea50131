package timeutil

import (
	"time"
)

// RFC3339Millis is the timestamp format used in API responses.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is the timestamp format used in log output.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Time wraps time.Time so JSON output always carries millisecond precision
// in UTC, e.g. "2025-07-27T00:00:00.000Z". Input accepts any RFC 3339 variant.
// A JSON null leaves the existing value untouched.
type Time struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(RFC3339Millis) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// NewTime creates a Time from a standard time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// NowMillis returns the current UTC time truncated to milliseconds, the
// finest resolution every document store backend preserves. Stored and
// returned timestamps therefore compare equal after a round trip.
func NowMillis() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NowMillisAfter is NowMillis bumped to one millisecond past prev when the
// clock has not moved beyond it, so successive writes order strictly.
func NowMillisAfter(prev time.Time) time.Time {
	now := NowMillis()
	if !now.After(prev) {
		return prev.UTC().Truncate(time.Millisecond).Add(time.Millisecond)
	}
	return now
}
