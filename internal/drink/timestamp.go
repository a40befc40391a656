package drink

import (
	"time"
)

// TimestampLayout is the 14-digit encoding used for pour start and end times
const TimestampLayout = "20060102150405"

// ParseTimestamp parses a YYYYMMDDHHMMSS string as an instant in loc.
// A nil loc means UTC.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if len(value) != len(TimestampLayout) {
		return time.Time{}, &InvalidTimestampError{Value: value}
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return time.Time{}, &InvalidTimestampError{Value: value}
		}
	}

	if loc == nil {
		loc = time.UTC
	}

	// ParseInLocation rejects out of range components such as month 13
	t, err := time.ParseInLocation(TimestampLayout, value, loc)
	if err != nil {
		return time.Time{}, &InvalidTimestampError{Value: value}
	}

	return t, nil
}

// FormatTimestamp encodes t in the 14-digit YYYYMMDDHHMMSS form
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
