package models

import (
	"time"
)

// GrantStatus represents the lifecycle of a grant
type GrantStatus string

const (
	// GrantStatusActive indicates the grant may be used for pours
	GrantStatusActive GrantStatus = "active"

	// GrantStatusRevoked indicates the grant was withdrawn
	GrantStatusRevoked GrantStatus = "revoked"
)

// Grant is the authorization and pricing context a pour happens under
type Grant struct {
	// ID is the unique identifier of the grant
	ID string

	// DrinkerID is the drinker the grant was issued to
	DrinkerID string

	// Policy names the pricing or authorization policy of the grant
	Policy string

	// Status is the lifecycle state of the grant
	Status GrantStatus

	// IssuedAt is when the grant was issued
	IssuedAt time.Time

	// ExpiresAt is when the grant stops being usable. Zero means never.
	ExpiresAt time.Time
}

// IsActive reports whether the grant can authorize a pour at the given time
func (g *Grant) IsActive(at time.Time) bool {
	if g.Status != GrantStatusActive {
		return false
	}
	if !g.ExpiresAt.IsZero() && !at.Before(g.ExpiresAt) {
		return false
	}
	return true
}
