package drinker

import "github.com/KirkDiggler/kegweb/internal/models"

// SaveDrinkerInput contains parameters for saving a drinker
type SaveDrinkerInput struct {
	Drinker *models.Drinker
}

// GetDrinkerInput contains parameters for retrieving a drinker
type GetDrinkerInput struct {
	DrinkerID string
}

// SaveGrantInput contains parameters for saving a grant
type SaveGrantInput struct {
	Grant *models.Grant
}

// GetGrantInput contains parameters for retrieving a grant
type GetGrantInput struct {
	GrantID string
}

// GetGrantsForDrinkerInput contains parameters for retrieving a drinker's grants
type GetGrantsForDrinkerInput struct {
	DrinkerID string
}

// GetGrantsForDrinkerOutput contains a drinker's grants, oldest first
type GetGrantsForDrinkerOutput struct {
	Grants []*models.Grant
}
