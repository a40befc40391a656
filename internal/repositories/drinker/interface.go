package drinker

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kegweb/internal/repositories/drinker Repository

import (
	"context"

	"github.com/KirkDiggler/kegweb/internal/models"
)

// Repository defines the interface for drinker and grant persistence
type Repository interface {
	// SaveDrinker persists a drinker
	SaveDrinker(ctx context.Context, input *SaveDrinkerInput) error

	// GetDrinker retrieves a drinker by ID
	GetDrinker(ctx context.Context, input *GetDrinkerInput) (*models.Drinker, error)

	// SaveGrant persists a grant and indexes it under its drinker
	SaveGrant(ctx context.Context, input *SaveGrantInput) error

	// GetGrant retrieves a grant by ID
	GetGrant(ctx context.Context, input *GetGrantInput) (*models.Grant, error)

	// GetGrantsForDrinker retrieves every grant issued to a drinker
	GetGrantsForDrinker(ctx context.Context, input *GetGrantsForDrinkerInput) (*GetGrantsForDrinkerOutput, error)
}
