package models

import (
	"time"
)

// Session groups pours that happened close together in time. A pour joins
// the current session while it lands before the session's end; otherwise it
// starts a new one.
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// StartTime is when the first pour of the session ended
	StartTime time.Time

	// EndTime is the last pour of the session plus the session timeout
	EndTime time.Time

	// VolumeML is the total volume poured during the session
	VolumeML float64

	// DrinkCount is the number of pours in the session
	DrinkCount int
}

// IsActive reports whether a pour at the given time would still join the session
func (s *Session) IsActive(at time.Time) bool {
	return s.EndTime.After(at)
}

// Accepts reports whether a pour at the given time belongs in the session.
// Pours may arrive late, so a pour up to one timeout before the start is
// still taken in.
func (s *Session) Accepts(at time.Time, timeout time.Duration) bool {
	return at.Before(s.EndTime) && !at.Before(s.StartTime.Add(-timeout))
}

// AddPour extends the session to cover a pour at the given time
func (s *Session) AddPour(at time.Time, volumeML float64, timeout time.Duration) {
	if s.StartTime.IsZero() || at.Before(s.StartTime) {
		s.StartTime = at
	}
	if end := at.Add(timeout); end.After(s.EndTime) {
		s.EndTime = end
	}
	s.VolumeML += volumeML
	s.DrinkCount++
}

// RemovePour takes a voided pour back out of the session totals
func (s *Session) RemovePour(volumeML float64) {
	s.VolumeML -= volumeML
	if s.VolumeML < 0 {
		s.VolumeML = 0
	}
	if s.DrinkCount > 0 {
		s.DrinkCount--
	}
}
