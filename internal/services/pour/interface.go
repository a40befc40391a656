package pour

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/kegweb/internal/services/pour Service

import "context"

// Service defines the interface for recording and describing pours
type Service interface {
	// RecordPour stores a pour reported by a keg's flow meter
	RecordPour(ctx context.Context, input *RecordPourInput) (*RecordPourOutput, error)

	// GetDrink describes a single pour
	GetDrink(ctx context.Context, input *GetDrinkInput) (*GetDrinkOutput, error)

	// ListRecentDrinks describes the newest pours across all kegs
	ListRecentDrinks(ctx context.Context, input *ListRecentDrinksInput) (*ListDrinksOutput, error)

	// ListDrinksForKeg describes the newest pours from a keg
	ListDrinksForKeg(ctx context.Context, input *ListDrinksForKegInput) (*ListDrinksOutput, error)

	// ListDrinksForDrinker describes the newest pours by a drinker
	ListDrinksForDrinker(ctx context.Context, input *ListDrinksForDrinkerInput) (*ListDrinksOutput, error)

	// VoidDrink marks a pour invalid and returns its volume to the keg
	VoidDrink(ctx context.Context, input *VoidDrinkInput) (*VoidDrinkOutput, error)

	// IssueGrant authorizes a drinker to pour under a policy
	IssueGrant(ctx context.Context, input *IssueGrantInput) (*IssueGrantOutput, error)

	// RevokeGrant withdraws a grant
	RevokeGrant(ctx context.Context, input *RevokeGrantInput) (*RevokeGrantOutput, error)

	// ListGrants lists the grants issued to a drinker
	ListGrants(ctx context.Context, input *ListGrantsInput) (*ListGrantsOutput, error)

	// RegisterDrinker creates a drinker or updates its names
	RegisterDrinker(ctx context.Context, input *RegisterDrinkerInput) (*RegisterDrinkerOutput, error)

	// AddKeg puts a new keg on tap
	AddKeg(ctx context.Context, input *AddKegInput) (*AddKegOutput, error)

	// SetKegOnline connects or disconnects a keg from its tap
	SetKegOnline(ctx context.Context, input *SetKegOnlineInput) (*SetKegOnlineOutput, error)

	// GetKeg describes a keg's level and its top drinkers
	GetKeg(ctx context.Context, input *GetKegInput) (*GetKegOutput, error)

	// ListKegs describes every keg's level
	ListKegs(ctx context.Context, input *ListKegsInput) (*ListKegsOutput, error)

	// GetSession describes a drinking session and who drank in it
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListSessions describes the newest drinking sessions
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)
}
