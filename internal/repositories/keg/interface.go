package keg

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kegweb/internal/repositories/keg Repository

import (
	"context"

	"github.com/KirkDiggler/kegweb/internal/models"
)

// Repository defines the interface for keg data persistence
type Repository interface {
	// SaveKeg persists a keg
	SaveKeg(ctx context.Context, input *SaveKegInput) error

	// GetKeg retrieves a keg by ID
	GetKeg(ctx context.Context, input *GetKegInput) (*models.Keg, error)

	// ListKegs retrieves all kegs, optionally only the online ones
	ListKegs(ctx context.Context, input *ListKegsInput) (*ListKegsOutput, error)

	// AddServedVolume adds a poured amount to a keg's served volume
	AddServedVolume(ctx context.Context, input *AddServedVolumeInput) (*models.Keg, error)
}
