package models

// DrinkerVolume is one drinker's total in a ranking
type DrinkerVolume struct {
	// DrinkerID identifies the drinker
	DrinkerID string

	// VolumeML is how much the drinker has poured
	VolumeML float64
}

// Leaderboard ranks drinkers by volume poured, largest first
type Leaderboard struct {
	// KegID is set when the ranking covers a single keg
	KegID string

	// SessionID is set when the ranking covers a single session
	SessionID string

	// Drinkers contains the ranked totals
	Drinkers []*DrinkerVolume
}
