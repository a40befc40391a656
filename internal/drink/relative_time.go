package drink

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	// absoluteLayout renders pours older than a day, e.g. "Sunday, January 1, 2023 - 12:00"
	absoluteLayout = "Monday, January 2, 2006 - 15:04"

	// MomentsAgo is the phrase used when the end time is after now
	MomentsAgo = "moments ago"
)

// RelativeTime describes how long before now the instant end was.
// Pours under a day old get a seconds, minutes or hours phrase; older pours
// get the absolute date of end, rendered in end's location.
func RelativeTime(end, now time.Time) string {
	elapsed := now.Sub(end)
	if elapsed < 0 {
		return MomentsAgo
	}

	delta := int64(elapsed / time.Second)

	switch {
	case delta < secondsPerMinute:
		return fmt.Sprintf("%d seconds ago", delta)
	case delta < secondsPerHour:
		return fmt.Sprintf("%d minutes %d seconds ago",
			delta/secondsPerMinute, delta%secondsPerMinute)
	case delta < secondsPerDay:
		return fmt.Sprintf("%d hours %d minutes ago",
			delta/secondsPerHour, (delta%secondsPerHour)/secondsPerMinute)
	default:
		return "on " + end.Format(absoluteLayout)
	}
}
