package models

import (
	"time"
)

// Drinker represents a registered user who pours drinks
type Drinker struct {
	// ID is the unique identifier of the drinker
	ID string

	// Username is the login name of the drinker
	Username string

	// DisplayName is the name shown next to the drinker's pours
	DisplayName string

	// CreatedAt is when the drinker was registered
	CreatedAt time.Time
}

// Name returns the display name, falling back to the username and then the ID
func (d *Drinker) Name() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	if d.Username != "" {
		return d.Username
	}
	return d.ID
}
