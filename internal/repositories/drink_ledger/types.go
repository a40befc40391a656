package drink_ledger

import (
	"github.com/KirkDiggler/kegweb/internal/drink"
	"github.com/KirkDiggler/kegweb/internal/models"
)

// SaveDrinkInput contains parameters for saving a pour row
type SaveDrinkInput struct {
	Record *drink.Record

	// EventID is the meter's identifier for the pour, optional. A row is
	// saved at most once per event ID within the event retention window.
	EventID string
}

// GetDrinkInput contains parameters for retrieving a pour row
type GetDrinkInput struct {
	DrinkID string
}

// ListRecentDrinksInput contains parameters for listing the newest pours.
// A Limit of zero or less returns every pour.
type ListRecentDrinksInput struct {
	Limit int
}

// ListDrinksForKegInput contains parameters for listing a keg's pours
type ListDrinksForKegInput struct {
	KegID string
	Limit int
}

// ListDrinksForDrinkerInput contains parameters for listing a drinker's pours
type ListDrinksForDrinkerInput struct {
	DrinkerID string
	Limit     int
}

// ListDrinksOutput contains pour rows, newest first
type ListDrinksOutput struct {
	Records []*drink.Record
}

// SetDrinkStatusInput contains parameters for changing a pour's status
type SetDrinkStatusInput struct {
	DrinkID string

	// From is the status the pour must currently have; empty matches any
	From models.DrinkStatus

	// Status is the new status
	Status models.DrinkStatus
}

// SetDrinkStatusOutput reports whether the call changed the pour
type SetDrinkStatusOutput struct {
	// Changed is false when the pour already had Status or did not have From
	Changed bool
}
