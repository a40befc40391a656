package keg

import "github.com/KirkDiggler/kegweb/internal/models"

type SaveKegInput struct {
	Keg *models.Keg
}

type GetKegInput struct {
	KegID string
}

type ListKegsInput struct {
	OnlineOnly bool
}

type ListKegsOutput struct {
	Kegs []*models.Keg
}

type AddServedVolumeInput struct {
	KegID    string
	VolumeML float64
}
