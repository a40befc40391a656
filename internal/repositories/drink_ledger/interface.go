package drink_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kegweb/internal/repositories/drink_ledger Repository

import (
	"context"

	"github.com/KirkDiggler/kegweb/internal/drink"
	"github.com/KirkDiggler/kegweb/internal/models"
)

// Repository defines the interface for pour row persistence
type Repository interface {
	// NextDrinkID allocates the next sequential drink ID
	NextDrinkID(ctx context.Context) (string, error)

	// SaveDrink stores a pour row and indexes it by keg, drinker and end time
	SaveDrink(ctx context.Context, input *SaveDrinkInput) error

	// GetDrink retrieves a pour row by ID
	GetDrink(ctx context.Context, input *GetDrinkInput) (*drink.Record, error)

	// ListRecentDrinks retrieves the newest pours across all kegs
	ListRecentDrinks(ctx context.Context, input *ListRecentDrinksInput) (*ListDrinksOutput, error)

	// ListDrinksForKeg retrieves the newest pours from a keg
	ListDrinksForKeg(ctx context.Context, input *ListDrinksForKegInput) (*ListDrinksOutput, error)

	// ListDrinksForDrinker retrieves the newest pours by a drinker
	ListDrinksForDrinker(ctx context.Context, input *ListDrinksForDrinkerInput) (*ListDrinksOutput, error)

	// SetDrinkStatus changes the lifecycle tag of a pour when it still has
	// the expected status. Exactly one of several racing callers sees Changed.
	SetDrinkStatus(ctx context.Context, input *SetDrinkStatusInput) (*SetDrinkStatusOutput, error)

	// AddDrinkToSession puts a pour in the current session, starting a new
	// session when the pour is past the current one's end
	AddDrinkToSession(ctx context.Context, input *AddDrinkToSessionInput) (*models.Session, error)

	// RemoveDrinkFromSession takes a voided pour out of its session's totals
	RemoveDrinkFromSession(ctx context.Context, input *RemoveDrinkFromSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetCurrentSession retrieves the newest session
	GetCurrentSession(ctx context.Context) (*models.Session, error)

	// ListSessions retrieves sessions, newest first
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// GetSessionDrinkers ranks the drinkers of a session by volume
	GetSessionDrinkers(ctx context.Context, input *GetSessionDrinkersInput) (*models.Leaderboard, error)

	// AddKegDrinkerVolume adjusts a drinker's running total on a keg
	AddKegDrinkerVolume(ctx context.Context, input *AddKegDrinkerVolumeInput) error

	// GetTopDrinkers ranks the drinkers of a keg by volume
	GetTopDrinkers(ctx context.Context, input *GetTopDrinkersInput) (*models.Leaderboard, error)
}
