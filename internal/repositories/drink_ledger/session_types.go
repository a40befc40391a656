package drink_ledger

import (
	"time"

	"github.com/KirkDiggler/kegweb/internal/models"
)

// AddDrinkToSessionInput contains parameters for grouping a pour into a session
type AddDrinkToSessionInput struct {
	DrinkID   string
	DrinkerID string

	// PouredAt is when the pour ended
	PouredAt time.Time

	VolumeML float64

	// Timeout is how long a session stays open after its last pour
	Timeout time.Duration
}

// RemoveDrinkFromSessionInput contains parameters for taking a pour out of its session
type RemoveDrinkFromSessionInput struct {
	DrinkID   string
	DrinkerID string
	VolumeML  float64
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// ListSessionsInput contains parameters for listing sessions.
// A Limit of zero or less returns every session.
type ListSessionsInput struct {
	Limit int
}

// ListSessionsOutput contains sessions, newest first
type ListSessionsOutput struct {
	Sessions []*models.Session
}

// GetSessionDrinkersInput contains parameters for ranking a session's drinkers
type GetSessionDrinkersInput struct {
	SessionID string
}

// AddKegDrinkerVolumeInput contains parameters for adjusting a keg total.
// A negative volume takes a voided pour back out.
type AddKegDrinkerVolumeInput struct {
	KegID     string
	DrinkerID string
	VolumeML  float64
}

// GetTopDrinkersInput contains parameters for ranking a keg's drinkers.
// A Limit of zero or less returns every drinker.
type GetTopDrinkersInput struct {
	KegID string
	Limit int
}
