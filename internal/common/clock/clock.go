package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/kegweb/internal/common/clock Clock

// Clock reports the current time. Pour timestamps carry no zone, so the
// location of Now decides how they are read.
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// SiteClock reports the system time in the keg site's local zone
type SiteClock struct {
	loc *time.Location
}

// NewSiteClock creates a clock for the given zone. A nil loc means UTC.
func NewSiteClock(loc *time.Location) *SiteClock {
	if loc == nil {
		loc = time.UTC
	}
	return &SiteClock{loc: loc}
}

// Now returns the current time in the site's zone
func (c *SiteClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location returns the site's zone
func (c *SiteClock) Location() *time.Location {
	return c.loc
}
